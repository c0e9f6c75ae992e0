package services

import "strings"

// AnswerService decides whether a submitted answer matches a problem's
// stored correct answer.
type AnswerService struct{}

func NewAnswerService() *AnswerService {
	return &AnswerService{}
}

// Normalize canonicalizes an answer for comparison: lowercase, all
// whitespace removed (internal runs included), decimal commas turned
// into dots. Total over any input and idempotent.
func (s *AnswerService) Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		switch {
		case r == ' ', r == '\t', r == '\n', r == '\r', r == '\v', r == '\f':
		case r == ',':
			b.WriteRune('.')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Matches compares a submission against the stored answer. A stored
// answer containing ';' or ',' is a set of acceptable values: both sides
// are split on those delimiters, normalized, and compared as sets (exact
// equality, so "2;3" matches "3;2" but a lone "2" does not).
func (s *AnswerService) Matches(submitted, correct string) bool {
	if strings.ContainsAny(correct, ";,") {
		return setsEqual(s.toSet(submitted), s.toSet(correct))
	}
	return s.Normalize(submitted) == s.Normalize(correct)
}

func (s *AnswerService) toSet(text string) map[string]struct{} {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == ';' || r == ','
	})
	set := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		set[s.Normalize(p)] = struct{}{}
	}
	return set
}

func setsEqual(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}
