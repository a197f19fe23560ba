package entity

import (
	"errors"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrOverpayment        = errors.New("payment exceeds invoice total")
	ErrDuplicatePayment   = errors.New("payment already registered")
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
	ErrTxConflict         = errors.New("transaction conflict")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrForbidden          = errors.New("forbidden")
)
