package dto

type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required,max=80"`
	Password string `json:"password" form:"password" validate:"required"`
}

type TokenResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresAt string `json:"expires_at"`
	Username  string `json:"username"`
}
