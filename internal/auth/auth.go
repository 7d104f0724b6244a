// Package auth is a thin client for the hosted Supabase auth backend.
// The chat pipeline never depends on it; it only serves the login surface
// of the terminal client.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// User is the authenticated account as reported by the backend.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Session is an authenticated session token pair.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	User         User   `json:"user"`
}

type apiError struct {
	Message          string `json:"message"`
	ErrorDescription string `json:"error_description"`
	Msg              string `json:"msg"`
}

func (e *apiError) text() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.ErrorDescription != "":
		return e.ErrorDescription
	case e.Msg != "":
		return e.Msg
	default:
		return "authentication failed"
	}
}

// Client talks to the GoTrue endpoints of a Supabase project.
type Client struct {
	client *resty.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithClientTimeout bounds every outbound request.
func WithClientTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.client.SetTimeout(timeout)
	}
}

// NewClient creates an auth client for the project at baseURL using its
// anonymous API key.
func NewClient(baseURL, anonKey string, opts ...ClientOption) *Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetTimeout(15 * time.Second)
	client.SetHeader("apikey", anonKey)

	c := &Client{client: client}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SignUp registers a new account and returns its session when the project
// signs users in directly after registration.
func (c *Client) SignUp(ctx context.Context, email, password, nickname string) (*Session, error) {
	var session Session
	var authErr apiError
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(map[string]any{
			"email":    email,
			"password": password,
			"data":     map[string]string{"first_name": nickname},
		}).
		SetResult(&session).
		SetError(&authErr).
		Post("/auth/v1/signup")
	if err != nil {
		return nil, fmt.Errorf("sign up: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("sign up: %s", authErr.text())
	}
	return &session, nil
}

// SignIn authenticates with email and password.
func (c *Client) SignIn(ctx context.Context, email, password string) (*Session, error) {
	var session Session
	var authErr apiError
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("grant_type", "password").
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&session).
		SetError(&authErr).
		Post("/auth/v1/token")
	if err != nil {
		return nil, fmt.Errorf("sign in: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("sign in: %s", authErr.text())
	}
	return &session, nil
}

// ResetPassword asks the backend to send a recovery email.
func (c *Client) ResetPassword(ctx context.Context, email string) error {
	var authErr apiError
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(map[string]string{"email": email}).
		SetError(&authErr).
		Post("/auth/v1/recover")
	if err != nil {
		return fmt.Errorf("reset password: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("reset password: %s", authErr.text())
	}
	return nil
}

// SignOut revokes the session behind accessToken.
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	var authErr apiError
	resp, err := c.client.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetError(&authErr).
		Post("/auth/v1/logout")
	if err != nil {
		return fmt.Errorf("sign out: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("sign out: %s", authErr.text())
	}
	return nil
}

// CurrentUser fetches the account behind accessToken.
func (c *Client) CurrentUser(ctx context.Context, accessToken string) (*User, error) {
	var user User
	var authErr apiError
	resp, err := c.client.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetResult(&user).
		SetError(&authErr).
		Get("/auth/v1/user")
	if err != nil {
		return nil, fmt.Errorf("current user: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("current user: %s", authErr.text())
	}
	return &user, nil
}
