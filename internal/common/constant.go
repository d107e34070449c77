// Package common contains constants shared by the findash client packages.
package common

// Header names and values used on outbound requests.
const (
	AuthorizationHeader = "Authorization"
	BearerScheme        = "Bearer"
	RequestIDHeader     = "X-Request-ID"
	ContentTypeJSON     = "application/json"
)

// Durable storage keys of the persisted credential record.
const (
	TokenKey = "token"
	UserKey  = "user"
)

// BearerValue formats token as an Authorization header value.
func BearerValue(token string) string {
	return BearerScheme + " " + token
}
