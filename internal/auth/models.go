package auth

import (
	"github.com/golang-jwt/jwt/v4"
)

// SignupRequest is the payload for account creation. Roles are optional and
// default to the plain user role.
type SignupRequest struct {
	Username    string   `json:"username" validate:"required,min=3,max=50"`
	Email       string   `json:"email" validate:"required,email"`
	Password    string   `json:"password" validate:"required,min=8"`
	FirstName   string   `json:"first_name" validate:"required,min=1,max=100"`
	LastName    string   `json:"last_name" validate:"required,min=1,max=100"`
	PhoneNumber string   `json:"phone_number,omitempty" validate:"omitempty,min=7,max=20"`
	Roles       []string `json:"roles,omitempty"`
}

type SigninRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

// TokenPair carries both tokens plus access token lifetime in seconds
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// AuthUser is the identity snapshot returned on signup/signin
type AuthUser struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
}

type AuthResponse struct {
	User   AuthUser  `json:"user"`
	Tokens TokenPair `json:"tokens"`
}

// Claims is the JWT payload shape shared with the auth middleware
type Claims struct {
	UserID   string   `json:"user_id"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
	Type     string   `json:"type"` // "access" or "refresh"
	jwt.RegisteredClaims
}
