package validation

import "errors"

type Kind string

const (
	KindMissingField     Kind = "missing_field"
	KindInvalidNumber    Kind = "invalid_number"
	KindBothZero         Kind = "both_zero"
	KindArithmeticDomain Kind = "arithmetic_domain"
)

var (
	ErrMissingField     = errors.New("missing field")
	ErrInvalidNumber    = errors.New("invalid number")
	ErrBothZero         = errors.New("both values zero")
	ErrArithmeticDomain = errors.New("value outside arithmetic domain")
)

var sentinels = map[Kind]error{
	KindMissingField:     ErrMissingField,
	KindInvalidNumber:    ErrInvalidNumber,
	KindBothZero:         ErrBothZero,
	KindArithmeticDomain: ErrArithmeticDomain,
}

// Error is a failed input check. Message is what the user sees; Field names
// the offending form field (empty when the check spans several fields).
type Error struct {
	Kind    Kind
	Field   string
	Message string
}

func New(kind Kind, field, msg string) *Error {
	return &Error{Kind: kind, Field: field, Message: msg}
}

func (e *Error) Error() string { return e.Message }

// Is lets errors.Is(err, ErrBothZero) match an *Error of that kind.
func (e *Error) Is(target error) bool {
	s, ok := sentinels[e.Kind]
	return ok && s == target
}

// As extracts the *Error from err, if any.
func As(err error) (*Error, bool) {
	var ve *Error
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
