package dto

// LoginRequest is form-encoded, matching the OAuth2 password flow shape.
type LoginRequest struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type TestTokenResponse struct {
	Username string `json:"username"`
	Message  string `json:"message"`
}
