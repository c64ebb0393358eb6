package domain

// DemoUserName is the display name given to every simulated login.
const DemoUserName = "Arunav Das"

// User is the citizen signed in to a session.
// It only exists between a successful (simulated) login and logout.
type User struct {
	PhoneNumber   string
	IsVerified    bool
	AadhaarNumber *string // Sealed to the session. Nil when the ID step was skipped
	Name          *string // Nullable
}

// DisplayName returns the user's name, or the phone number when no name is known.
func (u *User) DisplayName() string {
	if u.Name != nil && *u.Name != "" {
		return *u.Name
	}
	return u.PhoneNumber
}
