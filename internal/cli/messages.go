package cli

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/dmitrijs2005/cheftube/internal/common"
	"github.com/dmitrijs2005/cheftube/internal/timer"
)

var messages = []struct {
	err error
	msg string
}{
	{common.ErrRequiredFieldMissing, "this field is required"},
	{common.ErrInvalidEmailFormat, "not a valid email address"},
	{common.ErrPasswordTooShort, fmt.Sprintf("must be at least %d characters", common.PasswordMinLength)},
	{common.ErrPasswordMismatch, "passwords do not match"},
	{common.ErrWrongCurrentPassword, "current password is wrong"},
	{common.ErrDuplicateUsername, "this username is already taken"},
	{common.ErrDuplicateEmail, "this email is already registered"},
	{common.ErrInvalidCredentials, "invalid username/email or password"},
	{common.ErrTokenExpired, "saved session expired, please login again"},
	{common.ErrInvalidToken, "saved session is no longer valid, please login again"},
	{common.ErrUnsupportedLanguage, "supported languages: en, es, it"},
	{common.ErrorNotFound, "not found"},
	{common.ErrorStorage, "storage is unavailable, try again later"},
	{timer.ErrRunning, "pause the timer first"},
	{timer.ErrNothingToCount, "set a time first"},
	{timer.ErrNegativeDuration, "time must not be negative"},
	{timer.ErrTooLong, "time must be at most 99:59"},
}

// describe maps known errors to a user-facing message.
func describe(err error) string {
	for _, m := range messages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}
	return err.Error()
}

// report prints err for the user, one line per field for validation errors.
func report(w io.Writer, err error) {
	var fe common.FieldErrors
	if !errors.As(err, &fe) {
		fmt.Fprintln(w, "Error:", describe(err))
		return
	}

	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	fmt.Fprintln(w, "Please fix the following:")
	for _, f := range fields {
		fmt.Fprintf(w, "  %s: %s\n", f, describe(fe[f]))
	}
}
