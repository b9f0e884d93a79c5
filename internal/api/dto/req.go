package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kingrain94/account-api/internal/domain"
)

// createAccountFields are the body keys the create operation reads, in the
// order type errors are reported.
var createAccountFields = []string{"name", "website", "comment"}

var jsonNull = []byte("null")

// CreateAccountRequest documents the create body. Handlers decode into a map
// with DecodeCreateAccountBody instead, so missing and null stay distinct.
type CreateAccountRequest struct {
	Name    *string `json:"name" example:"test-account"`
	Website *string `json:"website" example:"www.example.com"`
	Comment *string `json:"comment,omitempty" example:"first customer"`
}

// DecodeCreateAccountBody turns a raw JSON body into the field map the
// validator works on. Absent keys are left out, null becomes a nil pointer.
func DecodeCreateAccountBody(raw []byte) (map[string]*string, *domain.Failure) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return nil, domain.NewValidationFailure("request body must be a JSON object")
	}

	body := make(map[string]*string, len(createAccountFields))
	var problems []string
	for _, field := range createAccountFields {
		value, ok := fields[field]
		if !ok {
			continue
		}
		if bytes.Equal(bytes.TrimSpace(value), jsonNull) {
			body[field] = nil
			continue
		}

		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			problems = append(problems, fmt.Sprintf("%s must be a string", field))
			continue
		}
		body[field] = &s
	}

	if len(problems) > 0 {
		return nil, domain.NewValidationFailure(strings.Join(problems, "; "))
	}
	return body, nil
}
