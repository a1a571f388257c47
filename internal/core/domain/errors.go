package domain

import (
	"fmt"
	"strings"
)

// Rule identifies which validation rule a violation belongs to.
type Rule string

const (
	RuleMissingField          Rule = "missing_field"
	RuleInvalidEnumValue      Rule = "invalid_enum_value"
	RuleMissingDependentField Rule = "missing_dependent_field"
	RuleIncompatibleField     Rule = "incompatible_field"
	RuleOutOfRangeValue       Rule = "out_of_range_value"
)

// Violation is a single field-level validation failure.
type Violation struct {
	Field   string `json:"field"`
	Rule    Rule   `json:"rule"`
	Message string `json:"message"`
}

// ValidationError aggregates every violation found in one request. The
// engine evaluates all rules and reports the full ordered list rather
// than stopping at the first failure.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "validation failed"
	}
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = fmt.Sprintf("%s: %s", v.Field, v.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// violations collects field-level failures during request validation.
type violations struct {
	list []Violation
}

func (v *violations) add(field string, rule Rule, format string, args ...any) {
	v.list = append(v.list, Violation{
		Field:   field,
		Rule:    rule,
		Message: fmt.Sprintf(format, args...),
	})
}

func (v *violations) missing(field string) {
	v.add(field, RuleMissingField, "%s is required", field)
}

// err returns the aggregate error, or nil when no rule was violated.
func (v *violations) err() error {
	if len(v.list) == 0 {
		return nil
	}
	return &ValidationError{Violations: v.list}
}

// UpstreamError is a failure reported by the Graph API. It is passed
// through to the caller untouched; the gateway never interprets or
// retries upstream failures.
type UpstreamError struct {
	Message     string `json:"message"`
	Type        string `json:"type"`
	Code        int    `json:"code"`
	Subcode     int    `json:"error_subcode"`
	UserMessage string `json:"error_user_msg"`
}

func (e *UpstreamError) Error() string {
	if e.Subcode != 0 {
		return fmt.Sprintf("meta api error %d (subcode %d): %s", e.Code, e.Subcode, e.Message)
	}
	return fmt.Sprintf("meta api error %d: %s", e.Code, e.Message)
}
