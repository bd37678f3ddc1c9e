package checkout

import "strings"

// ValidateSubmission checks the checkout form. Name must not be blank, the
// email must contain an '@' and the terms must be accepted. All failing
// fields are reported together.
func ValidateSubmission(f Form) error {
	var fields []string
	if strings.TrimSpace(f.Name) == "" {
		fields = append(fields, FieldName)
	}
	if email := strings.TrimSpace(f.Email); email == "" || !strings.Contains(email, "@") {
		fields = append(fields, FieldEmail)
	}
	if !f.AgreedToTerms {
		fields = append(fields, FieldAgreed)
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
