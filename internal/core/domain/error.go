package domain

import (
	"errors"
)

var (
	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrConflictingData = errors.New("data conflicts with existing data")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Authority errors.
	ErrTokenCreation              = errors.New("error creating token")
	ErrInvalidToken               = errors.New("access token is invalid")
	ErrEmptyAuthorizationHeader   = errors.New("authorization header is not provided")
	ErrInvalidAuthorizationHeader = errors.New("authorization header format is invalid")
	ErrInvalidAuthorizationType   = errors.New("authorization type is not supported")
	ErrUnauthorized               = errors.New("user is unauthorized to access the resource")
	ErrForbidden                  = errors.New("user is forbidden to access the resource")

	// * Business errors.
	ErrInvalidStatus       = errors.New("order status is not valid")
	ErrIllegalTransition   = errors.New("order status transition is not allowed")
	ErrEmptyOrder          = errors.New("order has no items")
	ErrInvalidAmount       = errors.New("amount is not valid")
	ErrInsufficientBalance = errors.New("balance is not enough")
	ErrAlreadyReleased     = errors.New("wallet transaction already released")
	ErrNotification        = errors.New("notification dispatch failed")
	ErrLockNotAcquired     = errors.New("lock is held by another process")
)
