package caseopening

// Open-quantity bounds per request
const (
	MinOpenQuantity = 1
	MaxOpenQuantity = 5
)

// Log messages
const (
	LogMsgOpenCaseCalled = "OpenCase called"
	LogMsgCaseOpened     = "Case opened"
	LogMsgCacheHit       = "Case served from cache"
)

// Failure reason labels for metrics
const (
	FailReasonCaseNotFound      = "case_not_found"
	FailReasonUserNotFound      = "user_not_found"
	FailReasonInvalidQuantity   = "invalid_quantity"
	FailReasonInsufficientFunds = "insufficient_funds"
	FailReasonEmptyCase         = "empty_case"
	FailReasonPersistence       = "persistence"
)
