package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"finassist/internal/auth"
)

func TestSignIn(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/v1/token", r.URL.Path)
		require.Equal(t, "password", r.URL.Query().Get("grant_type"))
		require.Equal(t, "anon-key", r.Header.Get("apikey"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "maria@example.com", body["email"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"access_token": "tok-123",
			"refresh_token": "ref-456",
			"expires_in": 3600,
			"user": {"id": "u-1", "email": "maria@example.com"}
		}`))
	}))
	t.Cleanup(server.Close)

	client := auth.NewClient(server.URL, "anon-key")
	session, err := client.SignIn(context.Background(), "maria@example.com", "s3cret")
	require.NoError(t, err)
	require.Equal(t, "tok-123", session.AccessToken)
	require.Equal(t, "maria@example.com", session.User.Email)
}

func TestSignInBadCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error_description": "Invalid login credentials"}`))
	}))
	t.Cleanup(server.Close)

	client := auth.NewClient(server.URL, "anon-key")
	_, err := client.SignIn(context.Background(), "maria@example.com", "wrong")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Invalid login credentials")
}

func TestSignUpSendsNickname(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/v1/signup", r.URL.Path)

		var body struct {
			Email string            `json:"email"`
			Data  map[string]string `json:"data"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "Maria", body.Data["first_name"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token": "tok-789", "user": {"id": "u-2"}}`))
	}))
	t.Cleanup(server.Close)

	client := auth.NewClient(server.URL, "anon-key")
	session, err := client.SignUp(context.Background(), "maria@example.com", "s3cret", "Maria")
	require.NoError(t, err)
	require.Equal(t, "tok-789", session.AccessToken)
}

func TestResetPassword(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/v1/recover", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	client := auth.NewClient(server.URL, "anon-key")
	require.NoError(t, client.ResetPassword(context.Background(), "maria@example.com"))
}

func TestCurrentUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/v1/user", r.URL.Path)
		require.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "u-1", "email": "maria@example.com"}`))
	}))
	t.Cleanup(server.Close)

	client := auth.NewClient(server.URL, "anon-key")
	user, err := client.CurrentUser(context.Background(), "tok-123")
	require.NoError(t, err)
	require.Equal(t, "u-1", user.ID)
}
