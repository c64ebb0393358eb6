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
	citizen.RegisterCallback(NewTabHandler)
	citizen.RegisterCallback(NewNavHandler)
	citizen.RegisterCallback(NewOpenGrievanceHandler)
	citizen.RegisterCallback(NewFilterHandler)
}

// --- tab_ ---

type tabHandler struct {
	presenter *citizen.Presenter
}

// NewTabHandler handles the bottom navigation.
func NewTabHandler(deps citizen.Deps, _ *zerolog.Logger) citizen.CallbackHandler {
	return &tabHandler{presenter: deps.Presenter}
}

func (h *tabHandler) Prefix() string { return screens.PrefixTab }

func (h *tabHandler) Handle(ctx context.Context, update *ports.BotUpdate, session *navigation.Session) error {
	tab := domain.Tab(strings.TrimPrefix(*update.CallbackData, screens.PrefixTab))
	if err := session.ChangeTab(tab); err != nil {
		return err
	}
	return h.presenter.Show(ctx, session, update.MessageID)
}

// --- nav_ ---

type navHandler struct {
	log       zerolog.Logger
	presenter *citizen.Presenter
}

// NewNavHandler handles view all, back and logout.
func NewNavHandler(deps citizen.Deps, baseLogger *zerolog.Logger) citizen.CallbackHandler {
	return &navHandler{
		log:       baseLogger.With().Str("component", "nav_handler").Logger(),
		presenter: deps.Presenter,
	}
}

func (h *navHandler) Prefix() string { return screens.PrefixNav }

func (h *navHandler) Handle(ctx context.Context, update *ports.BotUpdate, session *navigation.Session) error {
	var err error
	switch *update.CallbackData {
	case screens.NavAll:
		err = session.ViewAll()
	case screens.NavBack:
		err = session.Back()
	case screens.NavLogout:
		if err = session.Logout(ctx); err == nil {
			h.log.Info().Int64("chat_id", update.ChatID).Msg("Signed out from profile")
		}
	default:
		err = fmt.Errorf("nav action %q: %w", *update.CallbackData, navigation.ErrInvalidTransition)
	}
	if err != nil {
		return err
	}
	return h.presenter.Show(ctx, session, update.MessageID)
}

// --- grv_ ---

type openGrievanceHandler struct {
	presenter *citizen.Presenter
}

// NewOpenGrievanceHandler opens a grievance's detail screen.
func NewOpenGrievanceHandler(deps citizen.Deps, _ *zerolog.Logger) citizen.CallbackHandler {
	return &openGrievanceHandler{presenter: deps.Presenter}
}

func (h *openGrievanceHandler) Prefix() string { return screens.PrefixOpen }

func (h *openGrievanceHandler) Handle(ctx context.Context, update *ports.BotUpdate, session *navigation.Session) error {
	id := strings.TrimPrefix(*update.CallbackData, screens.PrefixOpen)
	if err := session.OpenGrievance(id); err != nil {
		return err
	}
	return h.presenter.Show(ctx, session, update.MessageID)
}

// --- flt_ ---

type filterHandler struct {
	presenter *citizen.Presenter
}

// NewFilterHandler handles the dashboard's status filter buttons.
func NewFilterHandler(deps citizen.Deps, _ *zerolog.Logger) citizen.CallbackHandler {
	return &filterHandler{presenter: deps.Presenter}
}

func (h *filterHandler) Prefix() string { return screens.PrefixFilter }

func (h *filterHandler) Handle(ctx context.Context, update *ports.BotUpdate, session *navigation.Session) error {
	status, err := h.target(*update.CallbackData, session)
	if err != nil {
		return err
	}
	if status != "" {
		if err := session.ToggleFilter(status); err != nil {
			return err
		}
	}
	return h.presenter.Show(ctx, session, update.MessageID)
}

// target resolves the status to toggle. "All" toggles the active status off;
// an empty result means there is nothing to change.
func (h *filterHandler) target(data string, session *navigation.Session) (domain.GrievanceStatus, error) {
	if data == screens.FilterAll {
		dash, ok := session.View().Screen.(domain.DashboardScreen)
		if !ok {
			return "", fmt.Errorf("filter all: %w", navigation.ErrInvalidTransition)
		}
		return dash.Filter.Status(), nil
	}

	status, ok := domain.ParseStatus(strings.TrimPrefix(data, screens.PrefixFilter))
	if !ok {
		return "", fmt.Errorf("filter %q: %w", data, navigation.ErrInvalidTransition)
	}
	return status, nil
}
