package services

import "fmt"

// Error codes for the service taxonomy.
const (
	ErrCodeValidation   = "validation_error"
	ErrCodeNotFound     = "compte_not_found"
	ErrCodeConflict     = "already_blocked"
	ErrCodeBusinessRule = "business_rule_violation"
	ErrCodeInternal     = "internal_error"
)

// ServiceError is a business error with a stable code. Handlers map codes onto
// HTTP statuses; raw internal detail stays out of responses.
type ServiceError struct {
	Code    string
	Message string
	Details map[string]interface{}
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *ServiceError) Unwrap() error {
	return e.Err
}

func NewValidationError(message string) *ServiceError {
	return &ServiceError{Code: ErrCodeValidation, Message: message}
}

func NewNotFoundError(compteID string) *ServiceError {
	return &ServiceError{
		Code:    ErrCodeNotFound,
		Message: "Le compte avec l'ID spécifié n'existe pas",
		Details: map[string]interface{}{"compteId": compteID},
	}
}

func NewConflictError(message string) *ServiceError {
	return &ServiceError{Code: ErrCodeConflict, Message: message}
}

func NewBusinessRuleError(message string) *ServiceError {
	return &ServiceError{Code: ErrCodeBusinessRule, Message: message}
}

func NewInternalError(err error) *ServiceError {
	return &ServiceError{Code: ErrCodeInternal, Message: "Erreur interne du serveur", Err: err}
}
