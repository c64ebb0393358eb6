package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeDigits(t *testing.T) {
	testCases := []struct {
		raw  string
		max  int
		want string
	}{
		{raw: "98765 43210", max: PhoneDigits, want: "9876543210"},
		{raw: "987654321012", max: PhoneDigits, want: "9876543210"},
		{raw: "১২৩৪", max: OTPDigits, want: ""},
		{raw: "12-34-56", max: OTPDigits, want: "1234"},
		{raw: "", max: AadhaarDigits, want: ""},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, SanitizeDigits(tc.raw, tc.max), "raw=%q", tc.raw)
	}
}

func TestLoginScreenGates(t *testing.T) {
	l := LoginScreen{Phone: "123456789"}
	assert.False(t, l.CanSubmitPhone())
	l.Phone += "0"
	assert.True(t, l.CanSubmitPhone())
	l.Verifying = true
	assert.False(t, l.CanSubmitPhone())
	assert.False(t, l.CanSkipAadhaar())

	l = LoginScreen{Step: LoginStepAadhaar, Aadhaar: "123"}
	assert.False(t, l.CanSubmitAadhaar())
	assert.True(t, l.CanSkipAadhaar())
	assert.Equal(t, ScreenLoginAadhaar, l.Kind())
}

func TestMaskAadhaar(t *testing.T) {
	assert.Equal(t, "XXXXXX7890", MaskAadhaar("1234567890"))
	assert.Equal(t, "789", MaskAadhaar("789"))
}

func TestDraftStepComplete(t *testing.T) {
	var d SubmissionDraft
	assert.False(t, d.StepComplete(1))
	d.ImageURL = "photo"
	assert.True(t, d.StepComplete(1))

	d.Category = CategoryElectricity
	d.Description = "Sparking wire"
	assert.False(t, d.StepComplete(2))
	d.Location = "Lane 2"
	assert.True(t, d.StepComplete(2))
	assert.True(t, d.StepComplete(3))
	assert.False(t, d.StepComplete(4))
}

func TestLanguage(t *testing.T) {
	assert.Equal(t, "en", LanguageEnglish.Code())
	assert.Equal(t, "as", LanguageAssamese.Code())

	l, err := ParseLanguage("as-IN")
	assert.NoError(t, err)
	assert.Equal(t, LanguageAssamese, l)

	_, err = ParseLanguage("fr")
	assert.ErrorIs(t, err, ErrUnknownLanguage)
	_, err = ParseLanguage("!!")
	assert.ErrorIs(t, err, ErrUnknownLanguage)
}
