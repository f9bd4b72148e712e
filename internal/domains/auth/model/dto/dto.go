package dto

import (
	"time"
	"wbrent/infras/jwt"
	userModel "wbrent/internal/domains/user/model"
	userDto "wbrent/internal/domains/user/model/dto"
)

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,max=72"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8,max=72,nefield=CurrentPassword"`
}

// Tokens is the token pair as returned to the client. ExpiresIn is the
// access token lifetime in seconds.
type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (t *Tokens) FromTokenPair(pair *jwt.TokenPair) {
	*t = Tokens{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    pair.TokenType,
		ExpiresIn:    pair.ExpiresIn,
	}
}

type LoginResponse struct {
	Tokens
	User userDto.UserResponse `json:"user"`
}

func (l *LoginResponse) FromUser(user userModel.User) {
	l.User.FromModel(user)
}

type RefreshTokenResponse struct {
	Tokens
}

// Column updates applied through shared.TransformFields.
type (
	lastLoginUpdate struct {
		LastLogin time.Time `db:"last_login"`
	}

	passwordUpdate struct {
		Password string `db:"password"`
	}
)

func LastLoginUpdate(at time.Time) any {
	return lastLoginUpdate{LastLogin: at}
}

func PasswordUpdate(hashed string) any {
	return passwordUpdate{Password: hashed}
}
