package navigation

import (
	"errors"
	"fmt"
	"time"

	"Nadi/internal/core/domain"
)

// InputPhone replaces the phone buffer with the digits of raw.
// It returns the sanitized buffer.
func (s *Session) InputPhone(raw string) (string, error) {
	return s.editLogin(domain.LoginStepPhone, "input phone", func(l *domain.LoginScreen) string {
		l.Phone = domain.SanitizeDigits(raw, domain.PhoneDigits)
		return l.Phone
	})
}

// InputOTP replaces the OTP buffer with the digits of raw.
func (s *Session) InputOTP(raw string) (string, error) {
	return s.editLogin(domain.LoginStepOTP, "input otp", func(l *domain.LoginScreen) string {
		l.OTP = domain.SanitizeDigits(raw, domain.OTPDigits)
		return l.OTP
	})
}

// InputAadhaar replaces the ID buffer with the digits of raw.
func (s *Session) InputAadhaar(raw string) (string, error) {
	return s.editLogin(domain.LoginStepAadhaar, "input aadhaar", func(l *domain.LoginScreen) string {
		l.Aadhaar = domain.SanitizeDigits(raw, domain.AadhaarDigits)
		return l.Aadhaar
	})
}

func (s *Session) editLogin(step domain.LoginStep, action string, edit func(*domain.LoginScreen) string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	login, err := s.loginStepLocked(step, action)
	if err != nil {
		return "", err
	}
	buf := edit(&login)
	s.screen = login
	return buf, nil
}

// SubmitPhone starts the simulated phone check. On completion the session
// moves to the OTP step.
func (s *Session) SubmitPhone() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	login, err := s.loginStepLocked(domain.LoginStepPhone, "submit phone")
	if err != nil {
		return err
	}
	if !login.CanSubmitPhone() {
		return fmt.Errorf("submit phone: need %d digits: %w", domain.PhoneDigits, ErrIncompleteInput)
	}

	s.verifyLocked(login, s.opts.Delays.Phone, func(l domain.LoginScreen) {
		l.Step = domain.LoginStepOTP
		l.OTP = ""
		s.screen = l
	})
	s.log.Info().Msg("Phone submitted; simulating carrier check")
	return nil
}

// SubmitOTP starts the simulated OTP check. On completion the session
// moves to the ID step.
func (s *Session) SubmitOTP() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	login, err := s.loginStepLocked(domain.LoginStepOTP, "submit otp")
	if err != nil {
		return err
	}
	if !login.CanSubmitOTP() {
		return fmt.Errorf("submit otp: need %d digits: %w", domain.OTPDigits, ErrIncompleteInput)
	}

	s.verifyLocked(login, s.opts.Delays.OTP, func(l domain.LoginScreen) {
		l.Step = domain.LoginStepAadhaar
		l.Aadhaar = ""
		s.screen = l
	})
	s.log.Info().Msg("OTP submitted; simulating verification")
	return nil
}

// SubmitAadhaar starts the simulated ID check. On completion the demo user
// is signed in with the sealed ID and the dashboard opens.
func (s *Session) SubmitAadhaar() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	login, err := s.loginStepLocked(domain.LoginStepAadhaar, "submit aadhaar")
	if err != nil {
		return err
	}
	if !login.CanSubmitAadhaar() {
		return fmt.Errorf("submit aadhaar: need %d digits: %w", domain.AadhaarDigits, ErrIncompleteInput)
	}

	sealed, err := s.sealAadhaar(login.Aadhaar)
	if err != nil {
		return fmt.Errorf("submit aadhaar: %w", err)
	}

	s.verifyLocked(login, s.opts.Delays.Aadhaar, func(l domain.LoginScreen) {
		s.signInLocked(l.Phone, &sealed)
	})
	s.log.Info().Msg("Aadhaar submitted; simulating identity check")
	return nil
}

// SkipAadhaar signs the demo user in without an ID. It completes at once.
func (s *Session) SkipAadhaar() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	login, err := s.loginStepLocked(domain.LoginStepAadhaar, "skip aadhaar")
	if err != nil {
		return err
	}
	if !login.CanSkipAadhaar() {
		return fmt.Errorf("skip aadhaar: %w", ErrVerificationPending)
	}

	s.signInLocked(login.Phone, nil)
	s.log.Info().Msg("Aadhaar step skipped")
	return nil
}

// MaskedAadhaar returns the signed-in user's ID with all but the last four
// digits hidden. ok is false when the ID step was skipped.
func (s *Session) MaskedAadhaar() (masked string, ok bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.maskedAadhaarLocked()
}

func (s *Session) maskedAadhaarLocked() (string, bool, error) {
	if s.user == nil {
		return "", false, ErrNotAuthenticated
	}
	if s.user.AadhaarNumber == nil {
		return "", false, nil
	}

	plain, err := s.opts.Security.Unseal(*s.user.AadhaarNumber, s.id.String())
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to unseal aadhaar number")
		return "", false, fmt.Errorf("unseal aadhaar: %w", err)
	}
	return domain.MaskAadhaar(plain), true, nil
}

// loginBackLocked steps the wizard back; from the phone step it returns to
// language selection.
func (s *Session) loginBackLocked(login domain.LoginScreen) error {
	login.Verifying = false
	switch login.Step {
	case domain.LoginStepAadhaar:
		login.Step = domain.LoginStepOTP
		login.Aadhaar = ""
		s.transitionLocked(login)
	case domain.LoginStepOTP:
		login.Step = domain.LoginStepPhone
		login.OTP = ""
		s.transitionLocked(login)
	default:
		s.transitionLocked(domain.LanguageScreen{})
	}
	return nil
}

// verifyLocked marks the step as verifying and schedules advance.
func (s *Session) verifyLocked(login domain.LoginScreen, d time.Duration, advance func(domain.LoginScreen)) {
	login.Verifying = true
	s.screen = login
	s.scheduleLocked(d, func() bool {
		current, ok := s.screen.(domain.LoginScreen)
		if !ok || !current.Verifying {
			return false
		}
		current.Verifying = false
		advance(current)
		return true
	})
}

func (s *Session) signInLocked(phone string, sealedAadhaar *string) {
	name := domain.DemoUserName
	s.user = &domain.User{
		PhoneNumber:   phone,
		IsVerified:    true,
		AadhaarNumber: sealedAadhaar,
		Name:          &name,
	}
	s.activeTab = domain.TabHome
	s.transitionLocked(domain.DashboardScreen{})
	s.log.Info().Msg("User signed in")
}

func (s *Session) sealAadhaar(id string) (string, error) {
	if s.opts.Security == nil {
		return "", errors.New("no security service configured")
	}
	sealed, err := s.opts.Security.Seal(id, s.id.String())
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to seal aadhaar number")
		return "", err
	}
	return sealed, nil
}

func (s *Session) loginStepLocked(step domain.LoginStep, action string) (domain.LoginScreen, error) {
	login, ok := s.screen.(domain.LoginScreen)
	if !ok || login.Step != step {
		return domain.LoginScreen{}, s.invalid(action)
	}
	if login.Verifying {
		return domain.LoginScreen{}, fmt.Errorf("%s: %w", action, ErrVerificationPending)
	}
	return login, nil
}
