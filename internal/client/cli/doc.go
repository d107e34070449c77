// Package cli provides the interactive findash command-line client.
//
// It wires configuration, local storage, the API and AI clients and the
// session manager into a REPL. The session is restored from storage before
// the first prompt; commands that need an account print a login hint until
// the user logs in. When the server rejects the stored token the user is
// sent back to the login prompt.
//
// Start it with App.Run(ctx), which blocks until the user exits or input
// ends.
package cli
