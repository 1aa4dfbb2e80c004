package model

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrInvalidCredentials - username/password pair did not match the single
// configured credential. Deliberately not distinguishing which half failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

// LoginRequest - POST /v1/auth/login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required.Error("username is required")),
		validation.Field(&r.Password, validation.Required.Error("password is required")),
	)
}

// LoginResponse carries the signed token.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}
