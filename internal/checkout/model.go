package checkout

import (
	"net/http"
	"strings"

	"github.com/nekogravitycat/experience-booking/internal/pkg/apperror"
)

var (
	ErrValidation        = apperror.New(http.StatusUnprocessableEntity, "please fill all required fields correctly")
	ErrAlreadyProcessing = apperror.New(http.StatusConflict, "checkout is already being processed")
	ErrStillProcessing   = apperror.New(http.StatusRequestTimeout, "checkout is still processing, fetch the result later")
)

// Field names reported by ValidationError.
const (
	FieldName   = "name"
	FieldEmail  = "email"
	FieldAgreed = "agreed_to_terms"
)

// Form is the customer input submitted at checkout.
type Form struct {
	Name          string
	Email         string
	AgreedToTerms bool
}

// Result is the outcome of a processed checkout.
type Result struct {
	Success     bool
	ReferenceID string
}

// ValidationError lists every missing or malformed checkout field.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid checkout fields: " + strings.Join(e.Fields, ", ")
}

// Unwrap exposes the field list as an AppError so handlers can render it.
func (e *ValidationError) Unwrap() error {
	return ErrValidation.WithDetails(e.Fields...)
}
