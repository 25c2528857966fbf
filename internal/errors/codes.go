package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials ErrorCode = "AUTH_001"
	AuthMissingSession     ErrorCode = "AUTH_002"
	AuthExpiredSession     ErrorCode = "AUTH_003"
	AuthInvalidSession     ErrorCode = "AUTH_004"
	AuthAccountLocked      ErrorCode = "AUTH_005"
	AuthEmailTaken         ErrorCode = "AUTH_006"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral        ErrorCode = "VALIDATION_001"
	ValidationRequiredField  ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat  ErrorCode = "VALIDATION_003"
	ValidationInvalidEmail   ErrorCode = "VALIDATION_004"
	ValidationInvalidMonth   ErrorCode = "VALIDATION_005"
	ValidationInvalidAmount  ErrorCode = "VALIDATION_006"
	ValidationUnsafeRedirect ErrorCode = "VALIDATION_007"
)

// Category error codes (CATEGORY_*)
const (
	CategoryNotFound      ErrorCode = "CATEGORY_001"
	CategoryNotDeletable  ErrorCode = "CATEGORY_002"
	CategoryInvalidType   ErrorCode = "CATEGORY_003"
	CategoryAlreadyExists ErrorCode = "CATEGORY_004"
)

// Ledger error codes (LEDGER_*) cover both expense and income rows
const (
	LedgerEntryNotFound  ErrorCode = "LEDGER_001"
	LedgerInvalidAmount  ErrorCode = "LEDGER_002"
	LedgerInvalidPeriod  ErrorCode = "LEDGER_003"
	LedgerDeleteRejected ErrorCode = "LEDGER_004"
)

// Profile and preset error codes
const (
	ProfileNotFound ErrorCode = "PROFILE_001"
	PresetNotFound  ErrorCode = "PRESET_001"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthInvalidCredentials: "Invalid email or password",
	AuthMissingSession:     "You must be logged in to access this page",
	AuthExpiredSession:     "Your session has expired, please log in again",
	AuthInvalidSession:     "Invalid session",
	AuthAccountLocked:      "Account is locked or disabled",
	AuthEmailTaken:         "An account with this email already exists",

	// Validation errors
	ValidationGeneral:        "Form not submitted correctly",
	ValidationRequiredField:  "Required field is missing",
	ValidationInvalidFormat:  "Invalid field format",
	ValidationInvalidEmail:   "Invalid email address format",
	ValidationInvalidMonth:   "Month must be between 1 and 12",
	ValidationInvalidAmount:  "Amount must contain only digits and a decimal point",
	ValidationUnsafeRedirect: "Redirect target must be a local path",

	// Category errors
	CategoryNotFound:      "Category not found",
	CategoryNotDeletable:  "Default categories cannot be deleted",
	CategoryInvalidType:   "Category type must be income or expense",
	CategoryAlreadyExists: "A category with this name already exists",

	// Ledger errors
	LedgerEntryNotFound:  "Entry not found",
	LedgerInvalidAmount:  "Invalid entry amount",
	LedgerInvalidPeriod:  "Invalid month or year",
	LedgerDeleteRejected: "Entry could not be deleted",

	// Profile and preset errors
	ProfileNotFound: "Profile not found",
	PresetNotFound:  "Preset not found",

	// System errors
	SystemInternalError:      "Something went wrong",
	SystemDatabaseError:      "Something went wrong",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
