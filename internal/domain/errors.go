package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Lookup errors
	ErrMsgCaseNotFound = "case not found"
	ErrMsgUserNotFound = "user not found"

	// Request validation errors
	ErrMsgInvalidQuantity = "quantity must be an integer between 1 and 5"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient balance"

	// Catalog invariant errors
	ErrMsgEmptyCase = "case has no items"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
	ErrMsgTxClosed      = "tx is closed"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Lookup errors
	ErrCaseNotFound = errors.New(ErrMsgCaseNotFound)
	ErrUserNotFound = errors.New(ErrMsgUserNotFound)

	// Request validation errors
	ErrInvalidQuantity = errors.New(ErrMsgInvalidQuantity)

	// Economy errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	// Catalog invariant errors. A case with zero items should be prevented
	// upstream by catalog invariants; if one reaches the selector the
	// transaction aborts with no mutation.
	ErrEmptyCase = errors.New(ErrMsgEmptyCase)

	// Database errors
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
)
