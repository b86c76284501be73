package models

import "errors"

// Domain errors surfaced at construction and issuance boundaries.
var (
	// ErrInvalidArgument marks malformed input: blank names, non-positive
	// prices, out-of-range discounts, unknown order ids.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidState marks a structurally valid request that violates a
	// business precondition, such as invoicing a non-pending or empty order.
	ErrInvalidState = errors.New("invalid state")
)
