package service

import "errors"

// Validation failures: caller-correctable, never retried.
var (
	ErrMissingFields    = errors.New("required fields are missing")
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrPasswordMismatch = errors.New("passwords don't match")
	ErrTermsNotAccepted = errors.New("terms of service not accepted")
	ErrInvalidCategory  = errors.New("unknown recipe category")
	ErrEmptyComment     = errors.New("comment text is empty")
)

// Uniqueness conflicts on registration.
var (
	ErrUsernameTaken = errors.New("username already exists")
	ErrEmailTaken    = errors.New("email already exists")
)

// Missing documents.
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrRecipeNotFound = errors.New("recipe not found")
)

// Authentication and authorization.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAuthRequired       = errors.New("authentication required")
	ErrNotRecipeOwner     = errors.New("recipe belongs to another user")
)
