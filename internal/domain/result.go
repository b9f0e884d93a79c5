package domain

import "net/http"

const ConflictMessage = "Conflict with item"

// Result is the outcome of a create operation: either *Success or *Failure.
// Unexpected faults are not Results; they travel as errors.
type Result interface {
	Status() int
	isResult()
}

// Success carries the created record and its location path.
type Success struct {
	Account  *Account
	Location string
}

func (*Success) Status() int { return http.StatusCreated }
func (*Success) isResult()   {}

// Failure is an expected, client-facing outcome such as a validation error
// or a key conflict.
type Failure struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

func (f *Failure) Status() int { return f.StatusCode }
func (*Failure) isResult()     {}

func NewValidationFailure(message string) *Failure {
	return &Failure{StatusCode: http.StatusBadRequest, Message: message}
}

func NewConflictFailure() *Failure {
	return &Failure{StatusCode: http.StatusConflict, Message: ConflictMessage}
}
