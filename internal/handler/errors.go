package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Path parameter error messages
	ErrMsgMissingCaseID = "Missing case ID"

	// Catalog error messages
	ErrMsgListCasesFailed = "Failed to list cases"
	ErrMsgGetCaseFailed   = "Failed to get case"

	// Profile error messages
	ErrMsgGetProfileFailed = "Failed to get profile"
)
