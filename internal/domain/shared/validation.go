package shared

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Violations collects field-level invariant failures so that a single
// validation error can enumerate every failing field.
type Violations []string

// Add records a failure for field. The field name is humanized, so
// Add("unit_price", "must be greater than 0") reads "Unit price must be greater than 0".
func (v *Violations) Add(field, message string) {
	*v = append(*v, HumanizeField(field)+" "+message)
}

// Merge appends all failures from other.
func (v *Violations) Merge(other Violations) {
	*v = append(*v, other...)
}

// Empty reports whether no failures were recorded.
func (v Violations) Empty() bool {
	return len(v) == 0
}

// Err returns nil when empty, otherwise a VALIDATION_FAILED domain error.
func (v Violations) Err() error {
	if v.Empty() {
		return nil
	}
	return NewDomainError(ErrValidation.Code, "Validation failed: "+strings.Join(v, ", "))
}

// HumanizeField turns a snake_case field name into a sentence-cased label.
func HumanizeField(field string) string {
	label := strings.TrimSpace(strings.ReplaceAll(field, "_", " "))
	if label == "" {
		return label
	}
	r, size := utf8.DecodeRuneInString(label)
	return string(unicode.ToUpper(r)) + label[size:]
}
