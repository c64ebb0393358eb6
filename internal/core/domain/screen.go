package domain

// ScreenKind names a screen; used for logging, events and rendering dispatch.
type ScreenKind string

const (
	ScreenSplash          ScreenKind = "splash"
	ScreenLanguageSelect  ScreenKind = "language_select"
	ScreenLoginPhone      ScreenKind = "login_phone"
	ScreenLoginOTP        ScreenKind = "login_otp"
	ScreenLoginAadhaar    ScreenKind = "login_aadhaar"
	ScreenDashboard       ScreenKind = "dashboard"
	ScreenAllGrievances   ScreenKind = "all_grievances"
	ScreenGrievanceDetail ScreenKind = "grievance_detail"
	ScreenProfile         ScreenKind = "profile"
	ScreenSubmitStep1     ScreenKind = "submit_step_1"
	ScreenSubmitStep2     ScreenKind = "submit_step_2"
	ScreenSubmitStep3     ScreenKind = "submit_step_3"
)

// Tab is the active bottom-navigation tab.
type Tab string

const (
	TabHome    Tab = "home"
	TabSubmit  Tab = "submit"
	TabProfile Tab = "profile"
)

// Screen is the closed set of states the navigation machine can be in.
// Each variant carries only the data its state needs.
type Screen interface {
	Kind() ScreenKind
	isScreen()
}

type SplashScreen struct{}

type LanguageScreen struct{}

// LoginScreen is the three-step login wizard.
type LoginScreen struct {
	Step      LoginStep
	Phone     string
	OTP       string
	Aadhaar   string
	Verifying bool // a simulated check is in flight
}

// DashboardScreen is the home list. The filter does not survive navigation.
type DashboardScreen struct {
	Filter StatusFilter
}

type AllGrievancesScreen struct{}

// GrievanceDetailScreen shows one grievance from the session's collection.
type GrievanceDetailScreen struct {
	Grievance *Grievance // reference into the collection, not a copy
	ReturnTo  ScreenKind // list screen the detail was opened from
}

type ProfileScreen struct{}

// SubmitScreen is the three-step submission wizard.
type SubmitScreen struct {
	Step     int
	Draft    SubmissionDraft
	Focus    DraftField // which text field the next typed message fills
	Locating bool       // simulated location detection in flight
}

func (SplashScreen) Kind() ScreenKind          { return ScreenSplash }
func (LanguageScreen) Kind() ScreenKind        { return ScreenLanguageSelect }
func (DashboardScreen) Kind() ScreenKind       { return ScreenDashboard }
func (AllGrievancesScreen) Kind() ScreenKind   { return ScreenAllGrievances }
func (GrievanceDetailScreen) Kind() ScreenKind { return ScreenGrievanceDetail }
func (ProfileScreen) Kind() ScreenKind         { return ScreenProfile }

func (s LoginScreen) Kind() ScreenKind {
	switch s.Step {
	case LoginStepOTP:
		return ScreenLoginOTP
	case LoginStepAadhaar:
		return ScreenLoginAadhaar
	default:
		return ScreenLoginPhone
	}
}

func (s SubmitScreen) Kind() ScreenKind {
	switch s.Step {
	case 2:
		return ScreenSubmitStep2
	case 3:
		return ScreenSubmitStep3
	default:
		return ScreenSubmitStep1
	}
}

func (SplashScreen) isScreen()          {}
func (LanguageScreen) isScreen()        {}
func (LoginScreen) isScreen()           {}
func (DashboardScreen) isScreen()       {}
func (AllGrievancesScreen) isScreen()   {}
func (GrievanceDetailScreen) isScreen() {}
func (ProfileScreen) isScreen()         {}
func (SubmitScreen) isScreen()          {}
