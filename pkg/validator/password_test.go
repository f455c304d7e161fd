package validator_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appforge/authkit/pkg/validator"
)

func regexpMustCompile(t *testing.T, pattern string) *regexp.Regexp {
	t.Helper()
	re, err := regexp.Compile(pattern)
	require.NoError(t, err)
	return re
}

func TestPasswordForLogin(t *testing.T) {
	t.Parallel()

	t.Run("accepts any non-empty password", func(t *testing.T) {
		t.Parallel()
		for _, pw := range []string{"a", " ", "short", "NoDigitsOrSpecials", "x"} {
			res := validator.PasswordForLogin(pw)
			assert.True(t, res.Valid, "login must accept existing credential: %q", pw)
		}
	})

	t.Run("rejects empty password", func(t *testing.T) {
		t.Parallel()
		res := validator.PasswordForLogin("")
		assert.False(t, res.Valid)
		assert.Equal(t, validator.KeyPasswordRequired, res.Error)
	})
}

func TestPasswordForRegister(t *testing.T) {
	t.Parallel()
	cfg := validator.DefaultConfig()
	strict := validator.DefaultPasswordConfig()

	t.Run("valid strong password", func(t *testing.T) {
		t.Parallel()
		res := validator.PasswordForRegister("Str0ng!Pass", strict, cfg)
		assert.True(t, res.Valid)
		assert.Empty(t, res.Error)
		assert.Equal(t, validator.Requirements{
			HasMinLength:   true,
			HasUppercase:   true,
			HasLowercase:   true,
			HasNumber:      true,
			HasSpecialChar: true,
		}, res.Requirements)
	})

	t.Run("empty password", func(t *testing.T) {
		t.Parallel()
		res := validator.PasswordForRegister("", strict, cfg)
		assert.False(t, res.Valid)
		assert.Equal(t, validator.KeyPasswordRequired, res.Error)
		assert.False(t, res.Requirements.HasMinLength)
	})

	t.Run("too short reported before class checks", func(t *testing.T) {
		t.Parallel()
		res := validator.PasswordForRegister("Pass1!", strict, cfg)
		assert.False(t, res.Valid)
		assert.Equal(t, validator.KeyPasswordTooShort, res.Error)
		// Requirements still reflect what the password contains.
		assert.False(t, res.Requirements.HasMinLength)
		assert.True(t, res.Requirements.HasUppercase)
		assert.True(t, res.Requirements.HasLowercase)
		assert.True(t, res.Requirements.HasNumber)
		assert.True(t, res.Requirements.HasSpecialChar)
	})

	t.Run("enforcement order is fixed", func(t *testing.T) {
		t.Parallel()
		cases := []struct {
			password string
			key      string
		}{
			{"lowercase1!x", validator.KeyPasswordRequiresUppercase},
			{"UPPERCASE1!X", validator.KeyPasswordRequiresLowercase},
			{"NoDigits!Here", validator.KeyPasswordRequiresNumber},
			{"NoSpecials1Here", validator.KeyPasswordRequiresSpecial},
		}
		for _, tc := range cases {
			res := validator.PasswordForRegister(tc.password, strict, cfg)
			assert.False(t, res.Valid, "password: %q", tc.password)
			assert.Equal(t, tc.key, res.Error, "password: %q", tc.password)
		}
	})

	t.Run("disabled flags are not enforced", func(t *testing.T) {
		t.Parallel()
		relaxed := validator.PasswordConfig{MinLength: 6}

		res := validator.PasswordForRegister("abcdef", relaxed, cfg)
		assert.True(t, res.Valid)
		// Requirement flags are computed for disabled rules too.
		assert.False(t, res.Requirements.HasUppercase)
		assert.True(t, res.Requirements.HasLowercase)
		assert.False(t, res.Requirements.HasNumber)
		assert.False(t, res.Requirements.HasSpecialChar)
	})

	t.Run("length is the only gate when no flags set", func(t *testing.T) {
		t.Parallel()
		relaxed := validator.PasswordConfig{MinLength: 8}
		for _, tc := range []struct {
			password string
			valid    bool
		}{
			{"12345678", true},
			{"aaaaaaaa", true},
			{"1234567", false},
			{"short", false},
		} {
			res := validator.PasswordForRegister(tc.password, relaxed, cfg)
			assert.Equal(t, tc.valid, res.Valid, "password: %q", tc.password)
		}
	})

	t.Run("requirements independent of enforcement", func(t *testing.T) {
		t.Parallel()
		password := "Mixed1!case"
		enforced := validator.PasswordForRegister(password, validator.DefaultPasswordConfig(), cfg)
		unenforced := validator.PasswordForRegister(password, validator.PasswordConfig{MinLength: 1}, cfg)
		assert.Equal(t, enforced.Requirements, unenforced.Requirements)
	})
}

func TestPasswordConfirmation(t *testing.T) {
	t.Parallel()

	t.Run("matching passwords", func(t *testing.T) {
		t.Parallel()
		res := validator.PasswordConfirmation("Secret1!", "Secret1!")
		assert.True(t, res.Valid)
	})

	t.Run("empty confirmation", func(t *testing.T) {
		t.Parallel()
		res := validator.PasswordConfirmation("Secret1!", "")
		assert.False(t, res.Valid)
		assert.Equal(t, validator.KeyConfirmPasswordRequired, res.Error)
	})

	t.Run("mismatch", func(t *testing.T) {
		t.Parallel()
		res := validator.PasswordConfirmation("Secret1!", "secret1!")
		assert.False(t, res.Valid)
		assert.Equal(t, validator.KeyPasswordsDoNotMatch, res.Error)
	})

	t.Run("no whitespace normalization", func(t *testing.T) {
		t.Parallel()
		res := validator.PasswordConfirmation("Secret1!", "Secret1! ")
		assert.False(t, res.Valid)
		assert.Equal(t, validator.KeyPasswordsDoNotMatch, res.Error)
	})
}
