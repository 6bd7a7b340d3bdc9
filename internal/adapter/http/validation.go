package http

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"fincalc/internal/domain/validation"
)

// Reusable error payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
type ErrorResponse struct {
	Error   string       `json:"error"`
	Kind    string       `json:"kind,omitempty"`
	Details []FieldError `json:"details,omitempty"`
}

var (
	reDecimal  = regexp.MustCompile(`^\s*[+-]?(\d+(\.\d*)?|\.\d+)\s*$`)
	reWholeNum = regexp.MustCompile(`^\s*[+-]?\d+\s*$`)
)

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	// report fields by their form name
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	// plain decimal number, optionally signed; the sign is judged later
	_ = v.RegisterValidation("decimal", func(fl validator.FieldLevel) bool {
		return reDecimal.MatchString(fl.Field().String())
	})
	// whole number, optionally signed
	_ = v.RegisterValidation("wholenum", func(fl validator.FieldLevel) bool {
		return reWholeNum.MatchString(fl.Field().String())
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// Map validator.ValidationErrors → []FieldError with readable messages.
func ToFieldErrors(err error) []FieldError {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out = append(out, FieldError{Field: field, Message: "is required"})
		case "decimal":
			out = append(out, FieldError{Field: field, Message: "must be a number"})
		case "wholenum":
			out = append(out, FieldError{Field: field, Message: "must be a whole number"})
		case "max":
			out = append(out, FieldError{Field: field, Message: "must be at most " + e.Param() + " characters"})
		default:
			out = append(out, FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return out
}

// invalidInput builds the single-message 422 payload for a failed
// struct validation. The first field error becomes the headline.
func invalidInput(err error) ErrorResponse {
	details := ToFieldErrors(err)
	kind := validation.KindInvalidNumber
	if ve, ok := err.(validator.ValidationErrors); ok && len(ve) > 0 && ve[0].Tag() == "required" {
		kind = validation.KindMissingField
	}
	return ErrorResponse{
		Error:   details[0].Field + " " + details[0].Message,
		Kind:    string(kind),
		Details: details,
	}
}

func fromValidationError(ve *validation.Error) ErrorResponse {
	resp := ErrorResponse{Error: ve.Message, Kind: string(ve.Kind)}
	if ve.Field != "" {
		resp.Details = []FieldError{{Field: ve.Field, Message: ve.Message}}
	}
	return resp
}
