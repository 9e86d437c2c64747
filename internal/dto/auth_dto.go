package dto

import "cantina/internal/model"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// LoginRequest selects an identity by email. No credential accompanies it —
// credential verification is an open item, deliberately not invented here.
type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type LoginResponse struct {
	AccessToken string     `json:"access_token"`
	TokenType   string     `json:"token_type"`
	ExpiresIn   int        `json:"expires_in"`
	User        model.User `json:"user"`
}

type SessionResponse struct {
	User model.User `json:"user"`
}
