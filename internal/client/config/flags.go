package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/findash/internal/flagx"
)

// parseFlags populates Config fields from command-line flags. args are
// filtered with flagx.FilterArgs so flags owned by other stages (-c) do not
// interfere.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-ai", "-s", "-t", "-l"})

	fs := flag.NewFlagSet("findash", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the finance API")
	fs.StringVar(&cfg.AIServiceURL, "ai", cfg.AIServiceURL, "base URL of the AI service")
	fs.StringVar(&cfg.StoragePath, "s", cfg.StoragePath, "path of the local storage file")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds, 0 = none)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return err
	}

	// -t only overrides when given, so a sub-second timeout from an earlier
	// source survives.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
	return nil
}
