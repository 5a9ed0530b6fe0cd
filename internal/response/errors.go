package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrTokenRequired ErrCode = "TOKEN_REQUIRED"
	ErrTokenInvalid  ErrCode = "TOKEN_INVALID"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidID      ErrCode = "INVALID_ID"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound      ErrCode = "NOT_FOUND"
	ErrBatchNotFound ErrCode = "BATCH_NOT_FOUND"

	// ─── Generation pipeline ───────────────────────────────────────────
	ErrGenerationFailed ErrCode = "GENERATION_FAILED"
	ErrInvalidCategory  ErrCode = "INVALID_CATEGORY"

	// ─── Question store ────────────────────────────────────────────────
	ErrQuestionInsert  ErrCode = "QUESTION_INSERT_FAILED"
	ErrBankEntryInsert ErrCode = "BANK_ENTRY_INSERT_FAILED"
	ErrVersionInsert   ErrCode = "VERSION_INSERT_FAILED"
	ErrAnswerInsert    ErrCode = "ANSWER_INSERT_FAILED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrTokenRequired:
		return "An authentication token is required."
	case ErrTokenInvalid:
		return "The authentication token is invalid."
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidID:
		return "Invalid ID format."
	case ErrInvalidPayload:
		return "Invalid request payload."
	case ErrNotFound:
		return "Resource not found."
	case ErrBatchNotFound:
		return "Draft batch not found or expired."
	case ErrGenerationFailed:
		return "The question generation service could not produce a usable response."
	case ErrInvalidCategory:
		return "No question category is bound to this course."
	case ErrQuestionInsert:
		return "Failed to insert the question."
	case ErrBankEntryInsert:
		return "Failed to insert the question bank entry."
	case ErrVersionInsert:
		return "Failed to insert the question version."
	case ErrAnswerInsert:
		return "Failed to insert an answer option."
	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}
