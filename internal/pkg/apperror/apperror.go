package apperror

// AppError is a custom error type that includes an HTTP status code and an optional internal error code.
type AppError struct {
	Code    int      // HTTP Status Code (e.g., 400, 404)
	Message string   // User-facing error message
	Details []string // Optional user-facing details, e.g. offending fields
	Err     error    // The underlying error, if any (not exposed to user)
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether target is an AppError with the same code and message,
// so that errors carrying details still match their sentinel.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

// New creates a new AppError with a status code and message.
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new AppError wrapping an existing error.
func Wrap(err error, code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// WithDetails returns a copy of e carrying the given details.
func (e *AppError) WithDetails(details ...string) *AppError {
	return &AppError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Err:     e.Err,
	}
}
