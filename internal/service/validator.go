package service

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/kingrain94/account-api/internal/domain"
)

const (
	FieldName    = "name"
	FieldWebsite = "website"
	FieldComment = "comment"

	maxFieldLength = 255

	errorSeparator = "; "
)

var websitePattern = regexp.MustCompile(`^[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// fieldRule inspects a present, non-null value and returns an error message,
// or "" when the value passes.
type fieldRule func(field, value string) string

type fieldCheck struct {
	field string
	rules []fieldRule
}

// AccountValidator turns a loosely typed request body into a
// domain.AccountRequest. Fields are checked in a fixed order and the first
// failing rule of each field is reported.
type AccountValidator struct {
	checks []fieldCheck
}

func NewAccountValidator() *AccountValidator {
	return &AccountValidator{
		checks: []fieldCheck{
			{field: FieldName, rules: []fieldRule{notBlank, maxLength}},
			{field: FieldWebsite, rules: []fieldRule{notBlank, maxLength, websiteDomain}},
		},
	}
}

// Validate returns the request, or a 400 failure whose message joins every
// field error with "; ".
func (v *AccountValidator) Validate(body map[string]*string) (*domain.AccountRequest, *domain.Failure) {
	var problems []string
	for _, check := range v.checks {
		if msg := check.run(body); msg != "" {
			problems = append(problems, msg)
		}
	}

	if len(problems) > 0 {
		return nil, domain.NewValidationFailure(strings.Join(problems, errorSeparator))
	}

	return domain.NewAccountRequest(*body[FieldName], *body[FieldWebsite], body[FieldComment]), nil
}

func (c fieldCheck) run(body map[string]*string) string {
	value, present := body[c.field]
	if !present {
		return fmt.Sprintf("%s may not be missing", c.field)
	}
	if value == nil {
		return fmt.Sprintf("%s may not be null", c.field)
	}
	for _, rule := range c.rules {
		if msg := rule(c.field, *value); msg != "" {
			return msg
		}
	}
	return ""
}

func notBlank(field, value string) string {
	if strings.TrimSpace(value) == "" {
		return fmt.Sprintf("%s may not be empty", field)
	}
	return ""
}

func maxLength(field, value string) string {
	if utf8.RuneCountInString(value) > maxFieldLength {
		return fmt.Sprintf("%s may not be more than %d characters", field, maxFieldLength)
	}
	return ""
}

func websiteDomain(_, value string) string {
	if !websitePattern.MatchString(value) {
		return "Invalid website domain"
	}
	return ""
}
