package domain

import (
	"errors"
)

var (
	MessageSuccessRegister            = "user registered successfully"
	MessageSuccessLogin               = "user logged in successfully"
	MessageSuccessGetMe               = "user profile retrieved successfully"
	MessageSuccessRegisterDeviceToken = "device token registered successfully"

	MessageFailedRegister            = "failed to register user"
	MessageFailedLogin               = "failed to login"
	MessageFailedGetMe               = "failed to retrieve user profile"
	MessageFailedRegisterDeviceToken = "failed to register device token"

	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrWrongCredentials   = errors.New("wrong email or password")
)

type (
	RegisterRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
	}

	UserResponse struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	RegisterDeviceTokenRequest struct {
		Token      string `json:"token" validate:"required"`
		DeviceInfo string `json:"device_info" validate:"omitempty"`
	}
)
