package navigation

import (
	"testing"
	"time"

	"Nadi/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_SplashAutoAdvances(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, domain.ScreenSplash, f.session.Screen())
	assert.Equal(t, []time.Duration{3500 * time.Millisecond}, f.sched.Pending())

	f.sched.Fire()

	assert.Equal(t, domain.ScreenLanguageSelect, f.session.Screen())
	ev, ok := f.bus.Last(domain.TopicScreenChanged)
	require.True(t, ok)
	assert.Equal(t, domain.ScreenLanguageSelect, ev.(domain.ScreenChangedEvent).Screen)
	assert.Equal(t, int64(42), ev.(domain.ScreenChangedEvent).ChatID)
}

func TestSession_SelectLanguage(t *testing.T) {
	f := newFixture(t)

	err := f.session.SelectLanguage(domain.LanguageAssamese)
	assert.ErrorIs(t, err, ErrInvalidTransition, "not offered on the splash screen")

	f.sched.Fire()
	assert.ErrorIs(t, f.session.SelectLanguage("Klingon"), domain.ErrUnknownLanguage)

	require.NoError(t, f.session.SelectLanguage(domain.LanguageAssamese))
	v := f.session.View()
	assert.Equal(t, domain.LanguageAssamese, v.Language)
	assert.Equal(t, domain.ScreenLoginPhone, v.Kind())
}

func TestSession_PhoneInput(t *testing.T) {
	f := newFixture(t)
	f.toLogin(t)

	testCases := []struct {
		name      string
		raw       string
		want      string
		canSubmit bool
	}{
		{name: "nine digits", raw: "987654321", want: "987654321", canSubmit: false},
		{name: "ten digits", raw: "9876543210", want: "9876543210", canSubmit: true},
		{name: "non digits stripped", raw: "+91 98765-4321", want: "9198765432", canSubmit: true},
		{name: "truncated", raw: "98765432109999", want: "9876543210", canSubmit: true},
		{name: "letters only", raw: "abc", want: "", canSubmit: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := f.session.InputPhone(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.canSubmit, f.login(t).CanSubmitPhone())
		})
	}

	_, err := f.session.InputPhone("12345")
	require.NoError(t, err)
	assert.ErrorIs(t, f.session.SubmitPhone(), ErrIncompleteInput)
	assert.Empty(t, f.sched.Pending())
}

func TestSession_OTPInput(t *testing.T) {
	f := newFixture(t)
	f.toLogin(t)

	_, err := f.session.InputOTP("1234")
	assert.ErrorIs(t, err, ErrInvalidTransition, "OTP is not the current step")

	_, err = f.session.InputPhone("9876543210")
	require.NoError(t, err)
	require.NoError(t, f.session.SubmitPhone())
	f.sched.Fire()
	require.Equal(t, domain.ScreenLoginOTP, f.session.Screen())

	got, err := f.session.InputOTP("12a3")
	require.NoError(t, err)
	assert.Equal(t, "123", got)
	assert.ErrorIs(t, f.session.SubmitOTP(), ErrIncompleteInput)

	got, err = f.session.InputOTP("123456")
	require.NoError(t, err)
	assert.Equal(t, "1234", got)
	assert.True(t, f.login(t).CanSubmitOTP())
	require.NoError(t, f.session.SubmitOTP())
	assert.Equal(t, []time.Duration{time.Second}, f.sched.Pending())
}

func TestSession_VerificationPendingBlocksInput(t *testing.T) {
	f := newFixture(t)
	f.toLogin(t)

	_, err := f.session.InputPhone("9876543210")
	require.NoError(t, err)
	require.NoError(t, f.session.SubmitPhone())

	assert.True(t, f.login(t).Verifying)
	assert.False(t, f.login(t).CanSubmitPhone())
	assert.ErrorIs(t, f.session.SubmitPhone(), ErrVerificationPending)
	_, err = f.session.InputPhone("1111111111")
	assert.ErrorIs(t, err, ErrVerificationPending)

	f.sched.Fire()
	l := f.login(t)
	assert.Equal(t, domain.LoginStepOTP, l.Step)
	assert.False(t, l.Verifying)
	assert.Equal(t, "9876543210", l.Phone)
}

func TestSession_AadhaarSkipAndContinue(t *testing.T) {
	f := newFixture(t)
	f.toLogin(t)
	_, _ = f.session.InputPhone("9876543210")
	require.NoError(t, f.session.SubmitPhone())
	f.sched.Fire()
	_, _ = f.session.InputOTP("4321")
	require.NoError(t, f.session.SubmitOTP())
	f.sched.Fire()

	l := f.login(t)
	assert.True(t, l.CanSkipAadhaar(), "empty ID may be skipped")
	assert.False(t, l.CanSubmitAadhaar())

	_, err := f.session.InputAadhaar("12345")
	require.NoError(t, err)
	assert.ErrorIs(t, f.session.SubmitAadhaar(), ErrIncompleteInput)
	assert.True(t, f.login(t).CanSkipAadhaar())

	_, err = f.session.InputAadhaar("1234 5678 90")
	require.NoError(t, err)
	require.True(t, f.login(t).CanSubmitAadhaar())
	require.NoError(t, f.session.SubmitAadhaar())
	assert.ErrorIs(t, f.session.SkipAadhaar(), ErrVerificationPending)
	assert.Equal(t, []time.Duration{1500 * time.Millisecond}, f.sched.Pending())

	f.sched.Fire()
	v := f.session.View()
	require.NotNil(t, v.User)
	require.NotNil(t, v.User.AadhaarNumber)
	assert.NotContains(t, *v.User.AadhaarNumber, "1234567890", "stored sealed")

	sec := f.session.opts.Security
	plain, err := sec.Unseal(*v.User.AadhaarNumber, f.session.ID().String())
	require.NoError(t, err)
	assert.Equal(t, "1234567890", plain)
	_, err = sec.Unseal(*v.User.AadhaarNumber, "another-session")
	assert.Error(t, err, "sealed to this session only")

	masked, ok, err := f.session.MaskedAadhaar()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "XXXXXX7890", masked)
}

func TestSession_LoginEndToEnd(t *testing.T) {
	f := newFixture(t)
	f.toDashboard(t)

	v := f.session.View()
	require.NotNil(t, v.User)
	assert.Equal(t, "9876543210", v.User.PhoneNumber)
	assert.True(t, v.User.IsVerified)
	assert.Equal(t, "Arunav Das", v.User.DisplayName())
	assert.Nil(t, v.User.AadhaarNumber)
	assert.Equal(t, domain.TabHome, v.ActiveTab)

	_, ok, err := f.session.MaskedAadhaar()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSession_LoginBack(t *testing.T) {
	f := newFixture(t)
	f.toLogin(t)
	_, _ = f.session.InputPhone("9876543210")
	require.NoError(t, f.session.SubmitPhone())
	f.sched.Fire()
	_, _ = f.session.InputOTP("12")

	require.NoError(t, f.session.Back())
	l := f.login(t)
	assert.Equal(t, domain.LoginStepPhone, l.Step)
	assert.Equal(t, "9876543210", l.Phone, "phone buffer kept")
	assert.Empty(t, l.OTP)

	require.NoError(t, f.session.Back())
	assert.Equal(t, domain.ScreenLanguageSelect, f.session.Screen())
}

func TestSession_BackDuringVerificationDropsCompletion(t *testing.T) {
	f := newFixture(t)
	f.toLogin(t)
	_, _ = f.session.InputPhone("9876543210")
	require.NoError(t, f.session.SubmitPhone())

	require.NoError(t, f.session.Back())
	assert.Equal(t, domain.ScreenLanguageSelect, f.session.Screen())
	assert.Empty(t, f.sched.Pending(), "pending check was cancelled")

	// Even a completion that raced past Stop must not apply.
	f.sched.FireStopped()
	assert.Equal(t, domain.ScreenLanguageSelect, f.session.Screen())
}

func TestSession_LogoutDuringVerificationDropsCompletion(t *testing.T) {
	f := newFixture(t)
	f.toDashboard(t)
	require.NoError(t, f.session.ChangeTab(domain.TabSubmit))
	require.NoError(t, f.session.AttachImage("file-id"))
	_, err := f.session.NextStep(t.Context())
	require.NoError(t, err)
	require.NoError(t, f.session.DetectLocation())

	require.NoError(t, f.session.Logout(t.Context()))
	f.sched.FireStopped()

	assert.Equal(t, domain.ScreenLanguageSelect, f.session.Screen())
	assert.Nil(t, f.session.View().User)
}
