package apperrors

import (
	"errors"
)

var (
	ErrShutdown = errors.New("shutdown error")

	ErrInvalidName    = errors.New("name is required and must not exceed 100 characters")
	ErrInvalidEmail   = errors.New("email is required and must be a valid address")
	ErrInvalidMessage = errors.New("message is required and must not exceed 5000 characters")

	ErrInquiryNotFound = errors.New("inquiry does not exist")
)
