package email

import "reflect"

// ValidationError reports a required argument that was nil or empty.
type ValidationError struct {
	Label string
}

func (e *ValidationError) Error() string {
	return e.Label + " is required"
}

// Require returns value unchanged when it is non-empty, otherwise a
// ValidationError naming the argument.
func Require(label, value string) (string, error) {
	if value == "" {
		return "", &ValidationError{Label: label}
	}
	return value, nil
}

// IsEmpty reports whether a value counts as absent for validation purposes:
// nil, an empty string, an empty slice or map, or a zero-length byte slice.
func IsEmpty(value any) bool {
	if value == nil {
		return true
	}
	switch v := value.(type) {
	case string:
		return v == ""
	case []byte:
		return len(v) == 0
	case []string:
		return len(v) == 0
	case []Recipient:
		return len(v) == 0
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
