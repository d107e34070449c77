package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		start    Config
		expected Config
		wantErr  bool
	}{
		{
			name: "all flags",
			args: []string{"-a", "http://h/api", "-ai", "http://ai", "-s", "x.db", "-t", "10", "-l", "debug"},
			expected: Config{
				APIBaseURL: "http://h/api", AIServiceURL: "http://ai", StoragePath: "x.db",
				RequestTimeout: 10 * time.Second, LogLevel: "debug",
			},
		},
		{
			name:     "foreign flags ignored",
			args:     []string{"-c", "cfg.json", "-v", "-a", "http://h/api"},
			start:    Config{LogFormat: "json"},
			expected: Config{APIBaseURL: "http://h/api", LogFormat: "json"},
		},
		{
			name:     "double-dash spelling",
			args:     []string{"--a", "http://h/api", "--l=warn"},
			expected: Config{APIBaseURL: "http://h/api", LogLevel: "warn"},
		},
		{
			name:     "absent -t keeps sub-second timeout",
			args:     nil,
			start:    Config{RequestTimeout: 500 * time.Millisecond},
			expected: Config{RequestTimeout: 500 * time.Millisecond},
		},
		{
			name:    "incorrect timeout",
			args:    []string{"-t", "abc"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.start
			err := parseFlags(&cfg, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}
