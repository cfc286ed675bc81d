package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldErrors_EmptyIsNil(t *testing.T) {
	fe := FieldErrors{}
	require.NoError(t, fe.Err())
}

func TestFieldErrors_FirstErrorPerFieldWins(t *testing.T) {
	fe := FieldErrors{}
	fe.Add(FieldEmail, ErrRequiredFieldMissing)
	fe.Add(FieldEmail, ErrInvalidEmailFormat)

	require.Len(t, fe, 1)
	assert.ErrorIs(t, fe[FieldEmail], ErrRequiredFieldMissing)
}

func TestFieldErrors_IsMatchesAnyField(t *testing.T) {
	fe := FieldErrors{}
	fe.Add(FieldUsername, ErrDuplicateUsername)
	fe.Add(FieldPassword, ErrPasswordTooShort)

	err := fe.Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateUsername))
	assert.True(t, errors.Is(err, ErrPasswordTooShort))
	assert.False(t, errors.Is(err, ErrDuplicateEmail))

	var got FieldErrors
	require.True(t, errors.As(err, &got))
	assert.True(t, got.Has(FieldUsername))
}

func TestFieldErrors_ErrorIsStable(t *testing.T) {
	fe := FieldErrors{}
	fe.Add(FieldUsername, ErrDuplicateUsername)
	fe.Add(FieldEmail, ErrInvalidEmailFormat)

	assert.Equal(t,
		"validation failed: email: invalid email format; username: username already in use",
		fe.Error())
}
