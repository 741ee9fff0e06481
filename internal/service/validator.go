package service

import (
	"math/big"
	"strings"
)

// AnswerValidator validates user answers against the canonical answer.
// Text answers compare case- and whitespace-insensitively; numeric answers
// compare by value, so "0.75", "3/4" and " 0,75 " all match each other.
type AnswerValidator struct{}

// NewAnswerValidator creates a new AnswerValidator.
func NewAnswerValidator() *AnswerValidator {
	return &AnswerValidator{}
}

// Validate checks if the user's answer matches the correct answer.
func (v *AnswerValidator) Validate(userAnswer, correctAnswer string) bool {
	user := v.normalize(userAnswer)
	correct := v.normalize(correctAnswer)

	if user == correct {
		return true
	}

	// Numeric answers may arrive in a different written form.
	userVal, okUser := parseNumeric(user)
	correctVal, okCorrect := parseNumeric(correct)
	if okUser && okCorrect {
		return userVal.Cmp(correctVal) == 0
	}

	return false
}

// normalize normalizes a string for comparison.
func (v *AnswerValidator) normalize(s string) string {
	s = strings.ToLower(s)
	s = strings.TrimSpace(s)

	// Primary-school pupils often type decimals with a comma.
	s = strings.ReplaceAll(s, ",", ".")

	// Collapse internal whitespace.
	s = strings.Join(strings.Fields(s), " ")

	return s
}

// parseNumeric parses an integer, decimal or fraction answer into an exact
// rational value. Returns ok=false for non-numeric text.
func parseNumeric(s string) (*big.Rat, bool) {
	if s == "" {
		return nil, false
	}

	// big.Rat accepts "12", "0.75" and "3/4" directly.
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, false
	}
	return r, true
}
