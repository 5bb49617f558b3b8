package validate

import (
	"regexp"
	"slices"

	"hrms/internal/apperror"
)

// Messages shared by the handlers and their tests.
const (
	MsgAllFieldsRequired = "All fields required"
	MsgInvalidEmail      = "Invalid email"
	MsgInvalidJSON       = "Invalid JSON body"
)

// emailPattern is anchored at the start only: anything after a matching
// prefix is accepted.
var emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+`)

// HasRequiredFields reports whether every name is a key of payload.
// Only key presence is checked; values may be empty or null.
func HasRequiredFields(payload map[string]any, fieldNames ...string) bool {
	for _, name := range fieldNames {
		if _, ok := payload[name]; !ok {
			return false
		}
	}
	return true
}

// IsValidEmail reports whether s has a basic local@domain.tld shape.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// DecodeFields copies the declared fields of payload into a string map.
// Keys outside fields are rejected, as are values that are not strings.
// Callers check presence with HasRequiredFields first.
func DecodeFields(payload map[string]any, fields ...string) (map[string]string, error) {
	declared := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		declared[f] = struct{}{}
	}
	var unknown []string
	for key := range payload {
		if _, ok := declared[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		slices.Sort(unknown)
		return nil, apperror.Validation("Unknown field: " + unknown[0])
	}

	out := make(map[string]string, len(fields))
	for _, f := range fields {
		raw, ok := payload[f]
		if !ok {
			continue
		}
		s, ok := raw.(string)
		if !ok {
			return nil, apperror.Validation("Invalid value for " + f)
		}
		out[f] = s
	}
	return out, nil
}
