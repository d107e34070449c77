// Package session owns the client's authentication state. A Manager restores
// the session from durable storage at startup, performs login, registration
// and logout, and drops the session when the API client reports that the
// server rejected the token.
package session
