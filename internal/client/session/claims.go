package session

import (
	"fmt"

	"github.com/dmitrijs2005/findash/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims decodes the registered claims of the session token for display.
// The signature is NOT verified; the server remains the only judge of the
// token, and an expired "exp" here does not end the session.
func (m *Manager) TokenClaims() (*jwt.RegisteredClaims, error) {
	token := bearerToken(m.AuthorizationHeader())
	if token == "" {
		return nil, common.ErrNoToken
	}

	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("decode token claims: %w", err)
	}
	return claims, nil
}
