// Package screens draws a session snapshot as a Telegram message. Controls
// whose precondition does not hold are simply not rendered.
package screens

import (
	"fmt"
	"strings"

	"Nadi/internal/bot/i18n"
	"Nadi/internal/bot/messages"
	"Nadi/internal/core/domain"
	"Nadi/internal/core/navigation"
	"Nadi/internal/core/ports"
)

// DashboardPreview is how many grievances the dashboard lists inline.
const DashboardPreview = 2

// Renderer turns views into messages.
type Renderer struct {
	tr *i18n.Translator
}

// NewRenderer creates a renderer backed by the string catalog.
func NewRenderer(tr *i18n.Translator) *Renderer {
	return &Renderer{tr: tr}
}

// Render draws the current screen of v.
func (r *Renderer) Render(v navigation.View) *messages.Builder {
	p := &page{tr: r.tr, lang: v.Language, b: messages.NewBuilder(v.ChatID)}

	switch scr := v.Screen.(type) {
	case domain.SplashScreen:
		p.b.WithText(p.t(i18n.KeySplash))
	case domain.LanguageScreen:
		p.language()
	case domain.LoginScreen:
		p.login(scr)
	case domain.DashboardScreen:
		p.dashboard(v, scr)
	case domain.AllGrievancesScreen:
		p.allGrievances(v)
	case domain.GrievanceDetailScreen:
		p.detail(scr)
	case domain.ProfileScreen:
		p.profile(v)
	case domain.SubmitScreen:
		p.submit(scr)
	}
	return p.b
}

// Notice renders a one-off message in lang.
func (r *Renderer) Notice(chatID int64, lang domain.Language, key string, args ...any) ports.SendMessageParams {
	return messages.NewBuilder(chatID).WithText(r.tr.T(lang, key, args...)).Build()
}

// Plain returns the catalog text for key without MarkdownV2 escapes, for
// callback answers.
func (r *Renderer) Plain(lang domain.Language, key string) string {
	return unescape(r.tr.T(lang, key))
}

func unescape(s string) string {
	var out strings.Builder
	escaped := false
	for _, r := range s {
		if r == '\\' && !escaped {
			escaped = true
			continue
		}
		escaped = false
		out.WriteRune(r)
	}
	return out.String()
}

type page struct {
	tr   *i18n.Translator
	lang domain.Language
	b    *messages.Builder
}

func (p *page) t(key string, args ...any) string {
	return p.tr.T(p.lang, key, args...)
}

func (p *page) button(key, data string) ports.Button {
	return messages.Button(p.t(key), data)
}

func (p *page) language() {
	var row []ports.Button
	for _, l := range domain.Languages() {
		row = append(row, messages.Button(string(l), PrefixLanguage+l.Code()))
	}
	p.b.WithText(messages.Escape(p.t(i18n.KeyChooseLanguage))).WithButtonRow(row...)
}

func (p *page) login(l domain.LoginScreen) {
	var text strings.Builder
	var primary []ports.Button

	switch l.Step {
	case domain.LoginStepPhone:
		fmt.Fprintf(&text, "*%s*\n%s\n\n%s", p.t(i18n.KeyWelcome), p.t(i18n.KeyLoginSubtitle),
			p.t(i18n.KeyTypePhone, buffer(l.Phone), domain.PhoneDigits))
		if l.CanSubmitPhone() {
			primary = append(primary, p.button(i18n.KeyContinue, LoginSubmit))
		}
	case domain.LoginStepOTP:
		fmt.Fprintf(&text, "%s\n\n%s", p.t(i18n.KeyOTPSent, l.Phone),
			p.t(i18n.KeyTypeOTP, buffer(l.OTP), domain.OTPDigits))
		if l.CanSubmitOTP() {
			primary = append(primary, p.button(i18n.KeyVerify, LoginSubmit))
		}
	case domain.LoginStepAadhaar:
		fmt.Fprintf(&text, "*%s*\n%s\n\n%s", p.t(i18n.KeyAadhaarTitle), p.t(i18n.KeyAadhaarSub),
			p.t(i18n.KeyTypeAadhaar, buffer(l.Aadhaar), domain.AadhaarDigits))
		if l.CanSubmitAadhaar() {
			primary = append(primary, p.button(i18n.KeyContinue, LoginSubmit))
		}
		if l.CanSkipAadhaar() {
			primary = append(primary, p.button(i18n.KeySkip, LoginSkip))
		}
	}

	if l.Verifying {
		text.WriteString("\n\n" + p.t(i18n.KeyVerifying))
	}

	p.b.WithText(text.String()).
		WithButtonRow(primary...).
		WithButtonRow(p.button(i18n.KeyBack, LoginBack))
}

func (p *page) dashboard(v navigation.View, dash domain.DashboardScreen) {
	var text strings.Builder

	name := p.t(i18n.KeyCitizen)
	if v.User != nil {
		name = messages.Escape(v.User.DisplayName())
	}
	fmt.Fprintf(&text, "%s,\n*%s*\n\n", p.t(i18n.KeyNamaskar), name)

	fmt.Fprintf(&text, "*%s*\n", p.t(i18n.KeyMarketingTitle))
	for _, m := range marketingUpdates {
		fmt.Fprintf(&text, "• [%s](%s) _%s_\n", messages.Escape(m.title(p.lang)), m.Image, messages.Escape(m.Date))
	}

	fmt.Fprintf(&text, "\n*%s* \\(%s\\)\n", p.t(i18n.KeyMyGrievances), p.t(i18n.KeyActiveCount, len(v.Grievances)))

	var shown []ports.Button
	for g := range v.Listed() {
		if len(shown) == DashboardPreview {
			break
		}
		text.WriteString(summaryLine(g))
		shown = append(shown, messages.Button(CategoryIcon(g.Category)+" "+g.Title, PrefixOpen+g.ID))
	}
	if len(shown) == 0 {
		text.WriteString(p.t(i18n.KeyNoGrievances) + "\n")
	}

	p.b.WithText(text.String()).
		WithButtonGrid(p.filterButtons(dash.Filter), 3).
		WithButtonGrid(shown, 1).
		WithButtonRow(p.button(i18n.KeyViewAll, NavAll)).
		WithButtonRow(p.tabs()...)
}

func (p *page) filterButtons(active domain.StatusFilter) []ports.Button {
	label := func(text string, on bool) string {
		if on {
			return "✅ " + text
		}
		return text
	}

	buttons := []ports.Button{messages.Button(label(p.t(i18n.KeyFilterAll), active.IsAll()), FilterAll)}
	for _, s := range domain.Statuses() {
		text := StatusBadge(s) + " " + string(s)
		buttons = append(buttons, messages.Button(label(text, active.Status() == s), PrefixFilter+string(s)))
	}
	return buttons
}

func (p *page) tabs() []ports.Button {
	return []ports.Button{
		p.button(i18n.KeyHome, PrefixTab+string(domain.TabHome)),
		p.button(i18n.KeySubmit, PrefixTab+string(domain.TabSubmit)),
		p.button(i18n.KeyProfile, PrefixTab+string(domain.TabProfile)),
	}
}

func (p *page) allGrievances(v navigation.View) {
	var text strings.Builder
	fmt.Fprintf(&text, "*%s*\n\n", p.t(i18n.KeyAllGrievances))

	var open []ports.Button
	for g := range v.Listed() {
		text.WriteString(summaryLine(g))
		fmt.Fprintf(&text, "   _%s_\n", messages.Escape(g.Description))
		open = append(open, messages.Button(CategoryIcon(g.Category)+" "+g.ID, PrefixOpen+g.ID))
	}
	if len(open) == 0 {
		text.WriteString(p.t(i18n.KeyNoGrievances))
	}

	p.b.WithText(text.String()).
		WithButtonGrid(open, 2).
		WithButtonRow(p.button(i18n.KeyBack, NavBack))
}

func (p *page) detail(d domain.GrievanceDetailScreen) {
	g := d.Grievance
	var text strings.Builder

	fmt.Fprintf(&text, "%s *%s*\n", StatusBadge(g.Status), messages.Escape(string(g.Status)))
	fmt.Fprintf(&text, "%s *%s*\n", CategoryIcon(g.Category), messages.Escape(g.Title))
	fmt.Fprintf(&text, "`%s`\n\n", g.ID)
	fmt.Fprintf(&text, "📍 %s\n", messages.Escape(g.Location))
	fmt.Fprintf(&text, "🗓 %s\n", messages.Escape(p.t(i18n.KeySubmittedOn, g.DateSubmitted)))
	if g.IsAnonymous {
		fmt.Fprintf(&text, "🛡 %s\n", p.t(i18n.KeyAnonymous))
	}
	fmt.Fprintf(&text, "\n%s\n\n*%s*\n", messages.Escape(g.Description), p.t(i18n.KeyTimeline))
	for i, u := range g.Updates {
		marker := "○"
		if i == len(g.Updates)-1 {
			marker = "●"
		}
		fmt.Fprintf(&text, "%s *%s* _%s_\n   %s · %s\n", marker,
			messages.Escape(u.Title), messages.Escape(u.Date),
			messages.Escape(u.Description), messages.Escape(u.Author))
	}

	if g.ImageURL != nil && *g.ImageURL != "" {
		p.b.WithPhoto(*g.ImageURL)
	}
	p.b.WithText(text.String()).WithButtonRow(p.button(i18n.KeyBack, NavBack))
}

func (p *page) profile(v navigation.View) {
	var text strings.Builder

	fmt.Fprintf(&text, "*%s*\n", p.t(i18n.KeyProfile))
	if v.User != nil {
		fmt.Fprintf(&text, "\n👤 *%s*\n", messages.Escape(v.User.DisplayName()))
		if v.User.IsVerified {
			text.WriteString(p.t(i18n.KeyVerified) + "\n")
		}
		fmt.Fprintf(&text, "\n%s: \\+91 %s\n", p.t(i18n.KeyPhone), v.User.PhoneNumber)

		aadhaar := p.t(i18n.KeyAadhaarSkipped)
		if v.MaskedAadhaar != "" {
			aadhaar = "`" + v.MaskedAadhaar + "`"
		}
		fmt.Fprintf(&text, "%s: %s\n", p.t(i18n.KeyAadhaar), aadhaar)
	}
	fmt.Fprintf(&text, "🌐 %s\n", messages.Escape(string(v.Language)))

	p.b.WithText(text.String()).
		WithButtonRow(p.button(i18n.KeyLogout, NavLogout)).
		WithButtonRow(p.tabs()...)
}

func (p *page) submit(s domain.SubmitScreen) {
	var text strings.Builder

	titles := map[int]string{1: i18n.KeyEvidence, 2: i18n.KeyDetails, 3: i18n.KeyReview}
	fmt.Fprintf(&text, "*%s*\n%s %s\n\n", p.t(titles[s.Step]), progressBar(s.Step), p.t(i18n.KeyStepOf, s.Step, domain.SubmitSteps))

	var rows [][]ports.Button
	switch s.Step {
	case 1:
		if s.Draft.ImageURL == "" {
			text.WriteString(p.t(i18n.KeySendPhoto))
		} else {
			text.WriteString(p.t(i18n.KeyPhotoReceived))
		}

	case 2:
		fmt.Fprintf(&text, "%s: %s\n", p.t(i18n.KeyCategory), p.orNotSet(string(s.Draft.Category)))
		fmt.Fprintf(&text, "%s: %s\n", p.t(i18n.KeyDescription), p.orNotSet(s.Draft.Description))
		location := p.orNotSet(s.Draft.Location)
		if s.Locating {
			location = p.t(i18n.KeyLocating)
		}
		fmt.Fprintf(&text, "%s: %s\n\n", p.t(i18n.KeyLocation), location)

		if s.Focus == domain.FieldLocation {
			text.WriteString(p.t(i18n.KeyTypeLocation))
		} else {
			text.WriteString(p.t(i18n.KeyTypeDescription))
		}

		var cats []ports.Button
		for _, c := range domain.Categories() {
			label := CategoryIcon(c) + " " + string(c)
			if c == s.Draft.Category {
				label = "✅ " + string(c)
			}
			cats = append(cats, messages.Button(label, PrefixCategory+string(c)))
		}
		rows = append(rows, chunk(cats, 3)...)

		var loc []ports.Button
		if !s.Locating {
			loc = append(loc, p.button(i18n.KeyDetectLocation, SubmitLocate))
		}
		if s.Focus != domain.FieldLocation {
			loc = append(loc, p.button(i18n.KeyEnterLocation, SubmitTypeLocation))
		}
		rows = append(rows, loc)

	case 3:
		fmt.Fprintf(&text, "%s *%s*\n%s\n📍 %s\n\n", CategoryIcon(s.Draft.Category),
			messages.Escape(string(s.Draft.Category)),
			messages.Escape(s.Draft.Description),
			messages.Escape(s.Draft.Location))

		toggle := "⬜ "
		if s.Draft.IsAnonymous {
			toggle = "✅ "
		}
		rows = append(rows, []ports.Button{messages.Button(toggle+p.t(i18n.KeyAnonymous), SubmitAnonymous)})
	}

	if s.Draft.StepComplete(s.Step) && !s.Locating {
		next := i18n.KeyNext
		if s.Step == domain.SubmitSteps {
			next = i18n.KeySendGrievance
		}
		rows = append(rows, []ports.Button{p.button(next, SubmitNext)})
	}
	rows = append(rows, []ports.Button{p.button(i18n.KeyBack, SubmitBack)})

	p.b.WithText(text.String())
	for _, row := range rows {
		p.b.WithButtonRow(row...)
	}
}

func (p *page) orNotSet(s string) string {
	if strings.TrimSpace(s) == "" {
		return p.t(i18n.KeyNotSet)
	}
	return messages.Escape(s)
}

func summaryLine(g *domain.Grievance) string {
	return fmt.Sprintf("%s %s *%s*\n   %s %s · %s\n",
		StatusBadge(g.Status), CategoryIcon(g.Category), messages.Escape(g.Title),
		messages.Escape(string(g.Status)), messages.Escape(g.DateSubmitted), messages.Escape(g.Location))
}

func progressBar(step int) string {
	return strings.Repeat("▰", step) + strings.Repeat("▱", domain.SubmitSteps-step)
}

func buffer(digits string) string {
	if digits == "" {
		return "_"
	}
	return digits
}

func chunk(buttons []ports.Button, size int) [][]ports.Button {
	var rows [][]ports.Button
	for len(buttons) > size {
		rows = append(rows, buttons[:size])
		buttons = buttons[size:]
	}
	if len(buttons) > 0 {
		rows = append(rows, buttons)
	}
	return rows
}
