package i18n

// Message keys. Values that take arguments document them in a trailing comment.
const (
	KeyChooseLanguage = "chooseLanguage"
	KeySplash         = "splash"
	KeyWelcome        = "welcome"
	KeyLoginSubtitle  = "loginSubtitle"
	KeyTypePhone      = "typePhone"    // digits typed so far, digits required
	KeyOTPSent        = "otpSent"      // phone number
	KeyTypeOTP        = "typeOTP"      // digits typed so far, digits required
	KeyAadhaarTitle   = "aadhaarTitle"
	KeyAadhaarSub     = "aadhaarSubtitle"
	KeyTypeAadhaar    = "typeAadhaar" // digits typed so far, digits required
	KeyVerifying      = "verifying"
	KeyContinue       = "continue"
	KeyVerify         = "verify"
	KeySkip           = "skip"
	KeyBack           = "back"

	KeyNamaskar       = "namaskar"
	KeyCitizen        = "citizen"
	KeyMarketingTitle = "marketingTitle"
	KeyMyGrievances   = "myGrievances"
	KeyActiveCount    = "activeCount" // number of grievances
	KeyViewAll        = "viewAll"
	KeyAllGrievances  = "allGrievances"
	KeyNoGrievances   = "noGrievances"
	KeyFilterAll      = "filterAll"

	KeyHome    = "home"
	KeySubmit  = "submit"
	KeyProfile = "profile"
	KeyLogout  = "logout"

	KeyEvidence        = "evidence"
	KeyDetails         = "details"
	KeyReview          = "review"
	KeyStepOf          = "stepOf" // step, total steps
	KeySendPhoto       = "sendPhoto"
	KeyPhotoReceived   = "photoReceived"
	KeyCategory        = "category"
	KeyDescription     = "description"
	KeyLocation        = "location"
	KeyTypeDescription = "typeDescription"
	KeyTypeLocation    = "typeLocation"
	KeyDetectLocation  = "detectLocation"
	KeyLocating        = "locating"
	KeyEnterLocation   = "enterLocation"
	KeyAnonymous       = "anonymous"
	KeyNext            = "next"
	KeySendGrievance   = "sendGrievance"
	KeyNotSet          = "notSet"

	KeySubmittedOn = "submittedOn" // date
	KeyTimeline    = "timeline"
	KeyReceipt     = "receipt" // grievance id

	KeyPhone          = "phone"
	KeyAadhaar        = "aadhaar"
	KeyAadhaarSkipped = "aadhaarSkipped"
	KeyVerified       = "verified"

	KeyHelp        = "help"
	KeyStartFirst  = "startFirst"
	KeyLoggedOut   = "loggedOut"
	KeyNotSignedIn = "notSignedIn"
	KeyIncomplete  = "incomplete"
	KeyUnavailable = "unavailable"
	KeyPleaseWait  = "pleaseWait"
	KeyError       = "error"
	KeyFailed      = "failed"
)
