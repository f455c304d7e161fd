package authprovider_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/appforge/authkit/pkg/authprovider"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	cases := []struct {
		code string
		kind authprovider.Kind
	}{
		{"auth/email-already-in-use", authprovider.KindEmailInUse},
		{"auth/invalid-email", authprovider.KindInvalidEmail},
		{"auth/weak-password", authprovider.KindWeakPassword},
		{"auth/user-not-found", authprovider.KindUserNotFound},
		{"auth/wrong-password", authprovider.KindWrongPassword},
		{"auth/user-disabled", authprovider.KindUserDisabled},
		{"auth/invalid-credential", authprovider.KindInvalidCredential},
		{"auth/requires-recent-login", authprovider.KindRequiresRecentLogin},
		{"auth/some-future-code", authprovider.KindUnknown},
		{"", authprovider.KindUnknown},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.kind, authprovider.Classify(tc.code), "code: %q", tc.code)
	}
}

func TestErrorLocalizationKey(t *testing.T) {
	t.Parallel()

	err := authprovider.NewError("auth/wrong-password", nil)
	assert.Equal(t, authprovider.KindWrongPassword, err.Kind)
	assert.Equal(t, "auth.errors.wrongPassword", err.LocalizationKey())

	unknown := authprovider.NewError("auth/not-in-table", nil)
	assert.Equal(t, "auth.errors.unknown", unknown.LocalizationKey())
}

func TestErrorWrapping(t *testing.T) {
	t.Parallel()

	cause := errors.New("network timeout")
	err := authprovider.NewError("auth/invalid-credential", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "invalid-credential")
	assert.Contains(t, err.Error(), "auth/invalid-credential")

	var classified *authprovider.Error
	assert.ErrorAs(t, error(err), &classified)
	assert.Equal(t, authprovider.KindInvalidCredential, classified.Kind)
}
