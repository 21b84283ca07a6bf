// Package schema validates request shape before anything reaches the service
// layer. Registration enforces the strong-password policy: at least eight
// characters with one lowercase letter, one uppercase letter, one digit, one
// special character and no whitespace.
package schema

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// RegisterRequest is the expected body of POST /auth/register.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=80"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,max=72,strongpassword"`
}

// LoginRequest is the expected body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// FieldError describes a single validation failure in the response shape the
// API promises: {"errors":[{"loc":..., "msg":...}]}.
type FieldError struct {
	Loc string `json:"loc"`
	Msg string `json:"msg"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration must never fail on a rule the validator cannot express;
	// strongpassword is registered once at init and has no error path.
	if err := v.RegisterValidation("strongpassword", strongPassword); err != nil {
		panic(err)
	}
	return v
}

// Check validates req and converts any failures into field errors.
func Check(req any) []FieldError {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Loc: "body", Msg: err.Error()}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Loc: strings.ToLower(fe.Field()),
			Msg: messageFor(fe),
		})
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "email":
		return "value is not a valid email address"
	case "min":
		return "value is too short"
	case "max":
		return "value is too long"
	case "strongpassword":
		return "password must be at least 8 characters, include one uppercase letter, " +
			"one lowercase letter, one number, one special character, and have no spaces"
	default:
		return "invalid value"
	}
}

func strongPassword(fl validator.FieldLevel) bool {
	pass := fl.Field().String()
	if len(pass) < 8 {
		return false
	}

	var lower, upper, digit, special bool
	for _, r := range pass {
		switch {
		case unicode.IsSpace(r):
			return false
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			special = true
		}
	}
	return lower && upper && digit && special
}
