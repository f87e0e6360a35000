package shared

// DomainError is the error type every domain and application rule
// violation surfaces as. The code is stable API surface; the message is
// for humans.
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *DomainError) Error() string {
	return e.Message
}

// Is matches by code, so errors.Is(err, ErrNotFound) holds for any
// not-found error regardless of its message.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	return ok && t.Code == e.Code
}

// NewDomainError creates a domain error with the given code and message
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Sentinels for the common rule violations. Callers needing a specific
// message construct their own error with the same code.
var (
	ErrNotFound            = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists       = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput        = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrConcurrencyConflict = NewDomainError("CONCURRENCY_CONFLICT", "Resource was modified by another process")
	ErrUnauthorized        = NewDomainError("UNAUTHORIZED", "Not authorized to perform this action")
	ErrForbidden           = NewDomainError("FORBIDDEN", "Access to this resource is forbidden")
	ErrInvalidState        = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
	ErrAlreadyCompleted    = NewDomainError("ALREADY_COMPLETED", "Order is already completed")
	ErrAlreadyPaid         = NewDomainError("ALREADY_PAID", "Salary entry is already paid")
)
