package handlers

import (
	"context"
	"fmt"

	"Nadi/internal/bot/citizen"
	"Nadi/internal/bot/screens"
	"Nadi/internal/core/domain"
	"Nadi/internal/core/navigation"
	"Nadi/internal/core/ports"

	"github.com/rs/zerolog"
)

func init() {
	citizen.RegisterCallback(NewLoginHandler)
}

type loginHandler struct {
	log       zerolog.Logger
	presenter *citizen.Presenter
}

// NewLoginHandler handles the continue, skip and back buttons of the login wizard.
func NewLoginHandler(deps citizen.Deps, baseLogger *zerolog.Logger) citizen.CallbackHandler {
	return &loginHandler{
		log:       baseLogger.With().Str("component", "login_handler").Logger(),
		presenter: deps.Presenter,
	}
}

func (h *loginHandler) Prefix() string {
	return screens.PrefixLogin
}

func (h *loginHandler) Handle(ctx context.Context, update *ports.BotUpdate, session *navigation.Session) error {
	step := session.Screen()
	var err error
	switch *update.CallbackData {
	case screens.LoginSubmit:
		err = h.submit(session)
	case screens.LoginSkip:
		err = session.SkipAadhaar()
	case screens.LoginBack:
		err = session.Back()
	default:
		err = fmt.Errorf("login action %q: %w", *update.CallbackData, navigation.ErrInvalidTransition)
	}
	if err != nil {
		return err
	}
	h.log.Debug().
		Int64("chat_id", update.ChatID).
		Str("step", string(step)).
		Str("action", *update.CallbackData).
		Msg("Login action accepted")
	return h.presenter.Show(ctx, session, update.MessageID)
}

// submit starts the check for whichever step is showing.
func (h *loginHandler) submit(session *navigation.Session) error {
	switch session.Screen() {
	case domain.ScreenLoginPhone:
		return session.SubmitPhone()
	case domain.ScreenLoginOTP:
		return session.SubmitOTP()
	case domain.ScreenLoginAadhaar:
		return session.SubmitAadhaar()
	default:
		return fmt.Errorf("login submit: %w", navigation.ErrInvalidTransition)
	}
}
