// Package client talks to the findash backends over HTTP.
//
// # Overview
//
// The package provides:
//  1. HTTPClient, the primary client for the finance REST API. Every request
//     passes through a request interceptor chain (bearer token read from
//     durable storage at send time, X-Request-ID) and every response through
//     a response interceptor chain (401 clears the stored credentials and
//     raises "session invalidated").
//  2. Resource call groups on top of it: Trades, Expenses, Goals, Market, plus
//     the Login/Register auth calls, which skip the response chain so that a
//     rejected login is an ordinary failure.
//  3. AIClient, a client for the AI microservice with its own base URL and no
//     interceptors.
//
// # Error Handling
//
// All failures are *APIError values. Use errors.Is with ErrUnavailable (no
// response), ErrServer (non-2xx) or ErrUnauthorized (401). Nothing is
// retried.
//
// Concurrency & Contexts
//
// Clients are safe for concurrent use. All calls accept context.Context; no
// timeout is applied unless configured with WithTimeout.
package client
