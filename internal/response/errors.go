package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// Authentication. All auth gate failures surface as the single
	// UNAUTHORISED code regardless of which check failed.
	ErrUnauthorised       ErrCode = "UNAUTHORISED"
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
	ErrNotVerified        ErrCode = "ACCOUNT_NOT_VERIFIED"
	ErrVerificationFailed ErrCode = "VERIFICATION_FAILED"

	// Validation.
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidID      ErrCode = "INVALID_ID"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// Resources.
	ErrNotFound      ErrCode = "NOT_FOUND"
	ErrConflict      ErrCode = "CONFLICT"
	ErrAccountExists ErrCode = "ACCOUNT_EXISTS"
	ErrSportUnknown  ErrCode = "SPORT_UNKNOWN"

	// Enrollment admission control.
	ErrDuplicateEnrollment ErrCode = "DUPLICATE_ENROLLMENT"
	ErrPairCapExceeded     ErrCode = "ENROLLMENT_CAP_REACHED"
	ErrRosterCapExceeded   ErrCode = "CLASS_FULL"

	// Class schedule rules.
	ErrDurationTooShort ErrCode = "CLASS_DURATION_TOO_SHORT"
	ErrStartAfterFirst  ErrCode = "CLASS_START_AFTER_FIRST_SESSION"

	// Rate limiting.
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// Server.
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrUnauthorised:
		return "Unauthorised."
	case ErrInvalidCredentials:
		return "Invalid credentials."
	case ErrNotVerified:
		return "Account is not verified. Check your inbox for the verification mail."
	case ErrVerificationFailed:
		return "Couldn't verify the account with this code."
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidID:
		return "Invalid id format."
	case ErrInvalidPayload:
		return "Invalid request payload."
	case ErrNotFound:
		return "Resource not found."
	case ErrConflict:
		return "Resource already exists."
	case ErrAccountExists:
		return "An account with this email already exists."
	case ErrSportUnknown:
		return "No sport with this name exists."
	case ErrDuplicateEnrollment:
		return "User is already enrolled in this class."
	case ErrPairCapExceeded:
		return "Max number of enrollments reached for this user and class."
	case ErrRosterCapExceeded:
		return "Max number of enrolled users reached for this class."
	case ErrDurationTooShort:
		return "Class duration is shorter than the scheduled sessions span."
	case ErrStartAfterFirst:
		return "Class start cannot be later than the first scheduled session."
	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."
	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}
