package helpers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"
)

// TestUserPassword is the password fixtures register with.
const TestUserPassword = "super_password123"

// RegisterUser creates an account through the public registration endpoint.
func RegisterUser(t *testing.T, ts *TestServer, username string) {
	t.Helper()

	res, body := ts.SendRequest(t, http.MethodPost, "/api/users", "", map[string]interface{}{
		"username": username,
		"email":    username + "@test.com",
		"password": TestUserPassword,
	})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("registration of %q failed with %d: %s", username, res.StatusCode, body)
	}
}

// Login exchanges credentials for a bearer token via the form login endpoint.
func Login(t *testing.T, ts *TestServer, username, password string) string {
	t.Helper()

	res, body := ts.SendForm(t, "/api/login", url.Values{
		"username": {username},
		"password": {password},
	})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("login of %q failed with %d: %s", username, res.StatusCode, body)
	}

	var tokenRes struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal([]byte(body), &tokenRes); err != nil {
		t.Fatalf("failed to decode token response: %v", err)
	}
	if tokenRes.AccessToken == "" {
		t.Fatalf("login of %q returned no access token: %s", username, body)
	}

	return tokenRes.AccessToken
}

// RegisterAndLogin creates a fresh user and returns its bearer token.
func RegisterAndLogin(t *testing.T, ts *TestServer, username string) string {
	t.Helper()
	RegisterUser(t, ts, username)
	return Login(t, ts, username, TestUserPassword)
}

// CreateTask makes a hiring task for the token's owner and returns its ID.
func CreateTask(t *testing.T, ts *TestServer, token, name string) uint {
	t.Helper()

	res, body := ts.SendRequest(t, http.MethodPost, "/api/tasks", token, map[string]interface{}{
		"task_name":       name,
		"job_description": "Backend engineer, Go, 3+ years",
	})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("task creation failed with %d: %s", res.StatusCode, body)
	}

	var taskRes struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal([]byte(body), &taskRes); err != nil {
		t.Fatalf("failed to decode task response: %v", err)
	}

	return taskRes.ID
}
