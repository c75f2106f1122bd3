package auth

import "codeberg.org/adforge/server/adforge/accounts"

// AuthResponse returned after successful OAuth callback
type AuthResponse struct {
	Account *accounts.Account `json:"account"`
	Token   string            `json:"token"`
}

// AccountResponse wraps account data
type AccountResponse struct {
	Account *accounts.Account `json:"account"`
}

// MessageResponse for simple success messages
type MessageResponse struct {
	Message string `json:"message"`
}
