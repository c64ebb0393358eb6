// Package i18n holds the bot's string tables and resolves them per language
// with golang.org/x/text. Assamese falls back to English for any key it
// does not define.
package i18n

import (
	"Nadi/internal/core/domain"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

var english = map[string]string{
	KeyChooseLanguage: "Choose your preferred language / আপোনাৰ পছন্দৰ ভাষা বাছক",
	KeySplash:         "🌊 *Nadi*\nYour voice, your government\\.",
	KeyWelcome:        "Welcome to Nadi",
	KeyLoginSubtitle:  "Enter your mobile number to continue\\.",
	KeyTypePhone:      "Mobile number: `%s` \\(%d digits\\)",
	KeyOTPSent:        "We sent a code to \\+91 %s\\.",
	KeyTypeOTP:        "Code: `%s` \\(%d digits\\)",
	KeyAadhaarTitle:   "Link Aadhaar",
	KeyAadhaarSub:     "Optional\\. Linking your Aadhaar helps us verify grievances faster\\.",
	KeyTypeAadhaar:    "Aadhaar: `%s` \\(%d digits\\)",
	KeyVerifying:      "⏳ Verifying\\.\\.\\.",
	KeyContinue:       "Continue",
	KeyVerify:         "Verify",
	KeySkip:           "Skip for now",
	KeyBack:           "⬅️ Back",

	KeyNamaskar:       "Namaskar",
	KeyCitizen:        "Citizen",
	KeyMarketingTitle: "Development Updates",
	KeyMyGrievances:   "My Grievances",
	KeyActiveCount:    "%d Active",
	KeyViewAll:        "View All Reports",
	KeyAllGrievances:  "All Grievances",
	KeyNoGrievances:   "No grievances found\\.",
	KeyFilterAll:      "All",

	KeyHome:    "🏠 Home",
	KeySubmit:  "➕ Report",
	KeyProfile: "👤 Profile",
	KeyLogout:  "Log out",

	KeyEvidence:        "Evidence",
	KeyDetails:         "Details",
	KeyReview:          "Review",
	KeyStepOf:          "Step %d of %d",
	KeySendPhoto:       "📷 Send a photo of the issue\\.",
	KeyPhotoReceived:   "✅ Photo attached\\. Send another to replace it\\.",
	KeyCategory:        "Category",
	KeyDescription:     "Description",
	KeyLocation:        "Location",
	KeyTypeDescription: "✍️ Type a short description of the issue\\.",
	KeyTypeLocation:    "📍 Type the location, or detect it\\.",
	KeyDetectLocation:  "📍 Detect My Location",
	KeyLocating:        "⏳ Detecting location\\.\\.\\.",
	KeyEnterLocation:   "⌨️ Type location",
	KeyAnonymous:       "Submit Anonymously",
	KeyNext:            "Next ➡️",
	KeySendGrievance:   "📨 Submit",
	KeyNotSet:          "—",

	KeySubmittedOn: "Submitted on %s",
	KeyTimeline:    "Timeline",
	KeyReceipt:     "✅ Grievance *%s* received\\. We will keep you posted\\.",

	KeyPhone:          "Phone",
	KeyAadhaar:        "Aadhaar",
	KeyAadhaarSkipped: "Not linked",
	KeyVerified:       "✅ Verified citizen",

	KeyHelp: "*Nadi* lets you report civic issues to your government\\.\n\n" +
		"/start opens the app, /logout signs you out\\.\n" +
		"Use the buttons under each message to move around\\. Type digits when asked for a number, " +
		"and send a photo when reporting an issue\\.",
	KeyStartFirst:  "Please type /start to begin\\.",
	KeyLoggedOut:   "You have been signed out\\.",
	KeyNotSignedIn: "You are not signed in\\.",
	KeyIncomplete:  "Please complete this step first.",
	KeyUnavailable: "That action is not available here.",
	KeyPleaseWait:  "Please wait…",
	KeyError:       "An internal error occurred\\. Please try again later\\.",
	KeyFailed:      "Something went wrong. Please try again.",
}

var assamese = map[string]string{
	KeySplash:         "🌊 *নদী*\nআপোনাৰ মাত, আপোনাৰ চৰকাৰ।",
	KeyWelcome:        "নদীলৈ স্বাগতম",
	KeyLoginSubtitle:  "আগবাঢ়িবলৈ আপোনাৰ ম'বাইল নম্বৰ দিয়ক।",
	KeyTypePhone:      "ম'বাইল নম্বৰ: `%s` \\(%d টা অংক\\)",
	KeyOTPSent:        "\\+91 %s লৈ এটা ক'ড পঠিওৱা হৈছে।",
	KeyTypeOTP:        "ক'ড: `%s` \\(%d টা অংক\\)",
	KeyAadhaarTitle:   "আধাৰ সংযোগ কৰক",
	KeyAadhaarSub:     "বৈকল্পিক। আধাৰ সংযোগে অভিযোগ সোনকালে সত্যাপন কৰাত সহায় কৰে।",
	KeyTypeAadhaar:    "আধাৰ: `%s` \\(%d টা অংক\\)",
	KeyVerifying:      "⏳ সত্যাপন হৈ আছে\\.\\.\\.",
	KeyContinue:       "আগবাঢ়ক",
	KeyVerify:         "সত্যাপন কৰক",
	KeySkip:           "এতিয়া এৰি দিয়ক",
	KeyBack:           "⬅️ উভতি যাওক",

	KeyNamaskar:       "নমস্কাৰ",
	KeyCitizen:        "নাগৰিক",
	KeyMarketingTitle: "উন্নয়নৰ বাতৰি",
	KeyMyGrievances:   "মোৰ অভিযোগসমূহ",
	KeyActiveCount:    "%d টা সক্ৰিয়",
	KeyViewAll:        "সকলো অভিযোগ চাওক",
	KeyAllGrievances:  "সকলো অভিযোগ",
	KeyNoGrievances:   "কোনো অভিযোগ পোৱা নগ'ল।",
	KeyFilterAll:      "সকলো",

	KeyHome:    "🏠 ঘৰ",
	KeySubmit:  "➕ অভিযোগ",
	KeyProfile: "👤 প্ৰফাইল",
	KeyLogout:  "লগ আউট",

	KeyEvidence:      "প্ৰমাণ",
	KeyCategory:      "শ্ৰেণী",
	KeyDescription:   "বিৱৰণ",
	KeyLocation:      "স্থান",
	KeyStepOf:        "পদক্ষেপ %d / %d",
	KeyAnonymous:     "বেনামীকৈ দাখিল কৰক",
	KeyNext:          "পৰৱৰ্তী ➡️",
	KeySendGrievance: "📨 দাখিল কৰক",

	KeyReceipt: "✅ অভিযোগ *%s* গ্ৰহণ কৰা হ'ল।",

	KeyPhone:   "ফোন",
	KeyAadhaar: "আধাৰ",

	KeyLoggedOut:  "আপুনি লগ আউট হ'ল।",
	KeyPleaseWait: "অনুগ্ৰহ কৰি অপেক্ষা কৰক…",
}

// Translator resolves message keys for a language.
type Translator struct {
	printers map[domain.Language]*message.Printer
}

// New builds the catalog for every supported language.
func New() (*Translator, error) {
	b := catalog.NewBuilder(catalog.Fallback(language.English))

	for key, msg := range english {
		if err := b.SetString(language.English, key, msg); err != nil {
			return nil, err
		}
	}

	as := domain.LanguageAssamese.Tag()
	for key, msg := range english {
		if local, ok := assamese[key]; ok {
			msg = local
		}
		if err := b.SetString(as, key, msg); err != nil {
			return nil, err
		}
	}

	t := &Translator{printers: make(map[domain.Language]*message.Printer)}
	for _, lang := range domain.Languages() {
		t.printers[lang] = message.NewPrinter(lang.Tag(), message.Catalog(b))
	}
	return t, nil
}

// T returns the message for key in lang, formatted with args.
func (t *Translator) T(lang domain.Language, key string, args ...any) string {
	p, ok := t.printers[lang]
	if !ok {
		p = t.printers[domain.LanguageEnglish]
	}
	return p.Sprintf(key, args...)
}
