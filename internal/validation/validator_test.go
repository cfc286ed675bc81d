package validation

import (
	"testing"

	"github.com/dmitrijs2005/cheftube/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignup_Valid(t *testing.T) {
	errs := common.FieldErrors{}
	New().Struct(Signup{Username: "alice", Email: "alice@x.com", Password: "pass1", Confirmation: "pass1"}, errs)
	assert.Empty(t, errs)
}

func TestSignup_AllFieldsReportedAtOnce(t *testing.T) {
	errs := common.FieldErrors{}
	New().Struct(Signup{Email: "not-an-email", Password: "abcd", Confirmation: "abcde"}, errs)

	require.Len(t, errs, 4)
	assert.ErrorIs(t, errs[common.FieldUsername], common.ErrRequiredFieldMissing)
	assert.ErrorIs(t, errs[common.FieldEmail], common.ErrInvalidEmailFormat)
	assert.ErrorIs(t, errs[common.FieldPassword], common.ErrPasswordTooShort)
	assert.ErrorIs(t, errs[common.FieldConfirmation], common.ErrPasswordMismatch)
}

func TestSignup_PasswordBoundary(t *testing.T) {
	v := New()

	errs := common.FieldErrors{}
	v.Struct(Signup{Username: "a", Email: "a@x.com", Password: "12345", Confirmation: "12345"}, errs)
	assert.False(t, errs.Has(common.FieldPassword))

	errs = common.FieldErrors{}
	v.Struct(Signup{Username: "a", Email: "a@x.com", Password: "1234", Confirmation: "1234"}, errs)
	assert.ErrorIs(t, errs[common.FieldPassword], common.ErrPasswordTooShort)
}

func TestSignup_EmptyPasswordIsRequired(t *testing.T) {
	errs := common.FieldErrors{}
	New().Struct(Signup{Username: "a", Email: "a@x.com"}, errs)
	assert.ErrorIs(t, errs[common.FieldPassword], common.ErrRequiredFieldMissing)
	assert.False(t, errs.Has(common.FieldConfirmation))
}

func TestIdentity(t *testing.T) {
	errs := common.FieldErrors{}
	New().Struct(Identity{Username: "", Email: ""}, errs)
	assert.ErrorIs(t, errs[common.FieldUsername], common.ErrRequiredFieldMissing)
	assert.ErrorIs(t, errs[common.FieldEmail], common.ErrRequiredFieldMissing)
}

func TestNewPassword_MissingConfirmation(t *testing.T) {
	errs := common.FieldErrors{}
	New().Struct(NewPassword{Password: "secret"}, errs)
	assert.ErrorIs(t, errs[common.FieldConfirmation], common.ErrRequiredFieldMissing)
	assert.False(t, errs.Has(common.FieldPassword))
}

func TestStruct_KeepsEarlierErrors(t *testing.T) {
	errs := common.FieldErrors{}
	errs.Add(common.FieldEmail, common.ErrDuplicateEmail)

	New().Struct(Identity{Username: "bob", Email: "broken"}, errs)
	assert.ErrorIs(t, errs[common.FieldEmail], common.ErrDuplicateEmail)
}
