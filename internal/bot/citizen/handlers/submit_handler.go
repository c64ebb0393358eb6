package handlers

import (
	"context"
	"fmt"
	"strings"

	"Nadi/internal/bot/citizen"
	"Nadi/internal/bot/screens"
	"Nadi/internal/core/domain"
	"Nadi/internal/core/navigation"
	"Nadi/internal/core/ports"

	"github.com/rs/zerolog"
)

func init() {
	citizen.RegisterCallback(NewSubmitHandler)
	citizen.RegisterCallback(NewCategoryHandler)
}

type submitHandler struct {
	log       zerolog.Logger
	presenter *citizen.Presenter
}

// NewSubmitHandler handles the wizard's next, back, locate and toggle buttons.
func NewSubmitHandler(deps citizen.Deps, baseLogger *zerolog.Logger) citizen.CallbackHandler {
	return &submitHandler{
		log:       baseLogger.With().Str("component", "submit_handler").Logger(),
		presenter: deps.Presenter,
	}
}

func (h *submitHandler) Prefix() string { return screens.PrefixSubmit }

func (h *submitHandler) Handle(ctx context.Context, update *ports.BotUpdate, session *navigation.Session) error {
	var err error
	switch *update.CallbackData {
	case screens.SubmitNext:
		var g *domain.Grievance
		g, err = session.NextStep(ctx)
		if g != nil {
			h.log.Info().
				Int64("chat_id", update.ChatID).
				Str("grievance_id", g.ID).
				Msg("Grievance filed from wizard")
		}
	case screens.SubmitBack:
		err = session.Back()
	case screens.SubmitLocate:
		err = session.DetectLocation()
	case screens.SubmitAnonymous:
		err = session.ToggleAnonymous()
	case screens.SubmitTypeLocation:
		err = session.FocusField(domain.FieldLocation)
	case screens.SubmitTypeDescribe:
		err = session.FocusField(domain.FieldDescription)
	default:
		err = fmt.Errorf("submit action %q: %w", *update.CallbackData, navigation.ErrInvalidTransition)
	}
	if err != nil {
		return err
	}
	return h.presenter.Show(ctx, session, update.MessageID)
}

type categoryHandler struct {
	presenter *citizen.Presenter
}

// NewCategoryHandler handles the category grid on step 2.
func NewCategoryHandler(deps citizen.Deps, _ *zerolog.Logger) citizen.CallbackHandler {
	return &categoryHandler{presenter: deps.Presenter}
}

func (h *categoryHandler) Prefix() string { return screens.PrefixCategory }

func (h *categoryHandler) Handle(ctx context.Context, update *ports.BotUpdate, session *navigation.Session) error {
	category := domain.GrievanceCategory(strings.TrimPrefix(*update.CallbackData, screens.PrefixCategory))
	if err := session.SelectCategory(category); err != nil {
		return err
	}
	return h.presenter.Show(ctx, session, update.MessageID)
}
