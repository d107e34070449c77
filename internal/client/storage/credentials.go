package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/findash/internal/client/models"
	"github.com/dmitrijs2005/findash/internal/common"
)

// Credentials reads and writes the persisted credential record: the bearer
// token under "token" and the JSON user identity under "user".
type Credentials struct {
	store Store
}

func NewCredentials(s Store) *Credentials {
	return &Credentials{store: s}
}

// Token returns the stored bearer token, or "" when none is stored.
func (c *Credentials) Token(ctx context.Context) (string, error) {
	b, err := c.store.Get(ctx, common.TokenKey)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// User returns the stored identity, or nil when none is stored.
func (c *Credentials) User(ctx context.Context) (*models.User, error) {
	b, err := c.store.Get(ctx, common.UserKey)
	if err != nil {
		return nil, err
	}
	if len(b) == 0 {
		return nil, nil
	}
	var u models.User
	if err := json.Unmarshal(b, &u); err != nil {
		return nil, fmt.Errorf("decode stored user: %w", err)
	}
	return &u, nil
}

// Save persists token and user together.
func (c *Credentials) Save(ctx context.Context, token string, user models.User) error {
	ub, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	if bw, ok := c.store.(batchWriter); ok {
		return bw.Apply(ctx, map[string][]byte{
			common.TokenKey: []byte(token),
			common.UserKey:  ub,
		}, nil)
	}

	if err := c.store.Set(ctx, common.TokenKey, []byte(token)); err != nil {
		return err
	}
	return c.store.Set(ctx, common.UserKey, ub)
}

// Clear removes token and user. Clearing an empty record is not an error.
func (c *Credentials) Clear(ctx context.Context) error {
	if bw, ok := c.store.(batchWriter); ok {
		return bw.Apply(ctx, nil, []string{common.TokenKey, common.UserKey})
	}

	if err := c.store.Delete(ctx, common.TokenKey); err != nil {
		return err
	}
	return c.store.Delete(ctx, common.UserKey)
}
