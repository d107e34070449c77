package client

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/findash/internal/common"
	"github.com/google/uuid"
)

// bearerTokenInterceptor attaches the stored token, read fresh for every
// request, as "Authorization: Bearer <token>". No token, no header.
func bearerTokenInterceptor(creds Credentials) RequestInterceptor {
	return func(req *http.Request) error {
		token, err := creds.Token(req.Context())
		if err != nil {
			return err
		}
		if token == "" {
			req.Header.Del(common.AuthorizationHeader)
			return nil
		}
		req.Header.Set(common.AuthorizationHeader, common.BearerValue(token))
		return nil
	}
}

func requestIDInterceptor(req *http.Request) error {
	if req.Header.Get(common.RequestIDHeader) == "" {
		req.Header.Set(common.RequestIDHeader, uuid.NewString())
	}
	return nil
}

// unauthorizedInterceptor clears the stored credentials and notifies the
// "session invalidated" subscribers on a 401, then hands the original error
// back to the caller.
func (c *HTTPClient) unauthorizedInterceptor(creds Credentials) ResponseInterceptor {
	return func(req *http.Request, _ *http.Response, err error) error {
		if !errors.Is(err, ErrUnauthorized) {
			return err
		}

		ctx := context.WithoutCancel(req.Context())
		if cerr := creds.Clear(ctx); cerr != nil {
			c.log.Error(ctx, "failed to clear credentials after 401", "error", cerr)
		}
		c.log.Warn(ctx, "session invalidated",
			"path", req.URL.Path,
			"request_id", req.Header.Get(common.RequestIDHeader),
		)
		c.notifyInvalidated(ctx)
		return err
	}
}
