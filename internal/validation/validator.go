// Package validation checks user-supplied credential fields with
// go-playground/validator and reports every violated field at once as a
// common.FieldErrors keyed by the field's json name.
package validation

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/cheftube/internal/common"
	"github.com/go-playground/validator/v10"
)

// Signup is the registration input. Confirmation must repeat Password.
type Signup struct {
	Username     string `json:"username" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,pwd"`
	Confirmation string `json:"confirmation" validate:"eqfield=Password"`
}

// Identity is the username/email pair edited on the profile screen.
type Identity struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
}

// NewPassword is an optional password change with its confirmation.
type NewPassword struct {
	Password     string `json:"password" validate:"required,pwd"`
	Confirmation string `json:"confirmation" validate:"required,eqfield=Password"`
}

type Validator struct {
	v *validator.Validate
}

// New configures a validator that uses json tag names in errors and knows
// the "pwd" alias for the minimum password length.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterAlias("pwd", "min="+strconv.Itoa(common.PasswordMinLength))
	return &Validator{v: v}
}

// Struct validates s and adds one error per failed field to errs.
// Strings are expected to be trimmed by the caller.
func (v *Validator) Struct(s any, errs common.FieldErrors) {
	err := v.v.Struct(s)
	if err == nil {
		return
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs.Add("payload", common.ErrorInternal)
		return
	}
	for _, fe := range verrs {
		errs.Add(fe.Field(), toError(fe))
	}
}

func toError(fe validator.FieldError) error {
	switch fe.ActualTag() {
	case "required":
		return common.ErrRequiredFieldMissing
	case "email":
		return common.ErrInvalidEmailFormat
	case "min":
		return common.ErrPasswordTooShort
	case "eqfield":
		return common.ErrPasswordMismatch
	default:
		return errors.New("failed on " + fe.Tag())
	}
}
