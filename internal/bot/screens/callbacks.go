package screens

// Callback data prefixes. Each prefix is owned by one callback handler.
const (
	PrefixLanguage = "lang_"
	PrefixLogin    = "login_"
	PrefixTab      = "tab_"
	PrefixNav      = "nav_"
	PrefixOpen     = "grv_"
	PrefixFilter   = "flt_"
	PrefixSubmit   = "sub_"
	PrefixCategory = "cat_"
)

// Callback data payloads.
const (
	LoginSubmit = PrefixLogin + "submit"
	LoginSkip   = PrefixLogin + "skip"
	LoginBack   = PrefixLogin + "back"

	NavAll    = PrefixNav + "all"
	NavBack   = PrefixNav + "back"
	NavLogout = PrefixNav + "logout"

	FilterAll = PrefixFilter + "all"

	SubmitNext         = PrefixSubmit + "next"
	SubmitBack         = PrefixSubmit + "back"
	SubmitLocate       = PrefixSubmit + "locate"
	SubmitAnonymous    = PrefixSubmit + "anon"
	SubmitTypeLocation = PrefixSubmit + "field_location"
	SubmitTypeDescribe = PrefixSubmit + "field_description"
)
