package apperrors

import (
	"net/http"
)

// Predefined errors and factories for the recruiting domain.

// ErrInvalidCredentials - login failed. The message does not say whether the
// username or the password was wrong.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Incorrect username or password",
	http.StatusUnauthorized,
)

// ErrInactiveUser - the token was valid but the account is disabled.
// Responds 400, not 401.
var ErrInactiveUser = New(
	CodeInactiveUser,
	"auth",
	"Inactive user",
	http.StatusBadRequest,
)

// ErrIncorrectPassword - password change rejected because the current
// password did not match.
var ErrIncorrectPassword = New(
	CodeInvalidCredentials,
	"users",
	"Incorrect password",
	http.StatusBadRequest,
)

// ErrUsernameTaken / ErrEmailTaken - registration conflicts. 400 rather than
// 409 to match the public API contract.
var (
	ErrUsernameTaken = New(CodeAlreadyExists, "users", "Username already registered", http.StatusBadRequest)
	ErrEmailTaken    = New(CodeAlreadyExists, "users", "Email already registered", http.StatusBadRequest)
)

// ErrTaskNotFound - the task does not exist or belongs to another user.
// The two cases are indistinguishable to the caller.
var ErrTaskNotFound = New(
	CodeNotFound,
	"tasks",
	"Task not found",
	http.StatusNotFound,
)

// UpstreamServiceError wraps a failed call to the AI provider.
func UpstreamServiceError(err error) *AppError {
	return Wrap(err, CodeExternalServiceError, "ai",
		"Error calling AI service: "+err.Error(), http.StatusInternalServerError)
}
