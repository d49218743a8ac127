package notesdk

import (
	"context"
	"net/http"
	"net/url"
)

// Register creates an account. On success the client holds the new
// session cookie.
func (c *SDKClient) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	var user User
	if _, err := c.call(ctx, http.MethodPost, "/auth/register", req, http.StatusCreated, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login signs in and stores the session cookie. The returned message is the
// server's greeting ("Welcome back, <first name>").
func (c *SDKClient) Login(ctx context.Context, req LoginRequest) (*User, string, error) {
	var user User
	msg, err := c.call(ctx, http.MethodPost, "/auth/login", req, http.StatusOK, &user)
	if err != nil {
		return nil, "", err
	}
	return &user, msg, nil
}

// Logout expires the session cookie.
func (c *SDKClient) Logout(ctx context.Context) error {
	_, err := c.call(ctx, http.MethodPost, "/auth/logout", nil, http.StatusOK, nil)
	return err
}

// HasSession reports whether the jar currently holds a session cookie for
// the service.
func (c *SDKClient) HasSession() bool {
	if c.HTTPClient.Jar == nil {
		return false
	}
	u, err := url.Parse(c.BaseURL + "/")
	if err != nil {
		return false
	}
	for _, ck := range c.HTTPClient.Jar.Cookies(u) {
		if ck.Name == "jwt" && ck.Value != "" {
			return true
		}
	}
	return false
}
