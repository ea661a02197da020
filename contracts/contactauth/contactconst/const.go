package contactconst

// Contact categories.
const (
	Email = iota
	Telegram
	Twitter
	Github
	GovForum

	// CategoryCount is the number of known contact categories.
	CategoryCount = iota
)

const (
	// MaxPageLimit is the maximum number of accounts returned by a single
	// page call.
	MaxPageLimit = 100

	// RequestKeyLength is the length of a request key (SHA-256 digest).
	RequestKeyLength = 32
)

// Error messages. Contract panics start with one of these.
const (
	ErrPermissionDenied           = "permission denied"
	ErrPermissionMismatch         = "permission mismatch"
	ErrInvalidContact             = "invalid contact"
	ErrInvalidAmount              = "invalid amount"
	ErrInvalidRequestKey          = "invalid request key"
	ErrDuplicateRequest           = "duplicate request"
	ErrContactAlreadyRegistered   = "contact already registered"
	ErrRequestNotWhitelisted      = "request not whitelisted"
	ErrRequestNotFound            = "request not found"
	ErrUndefinedContact           = "undefined contact"
	ErrNotOwner                   = "not owner"
	ErrInsufficientStorageBalance = "insufficient storage balance"
	ErrLimitExceeded              = "limit exceeded"
	ErrContactNotFound            = "contact not found"
)
