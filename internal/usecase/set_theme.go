package usecase

import (
	"context"
	"fmt"

	"github.com/ksaito/pmdash/internal/domain"
)

// SetThemeInput contains the parameters for changing the theme.
type SetThemeInput struct {
	Theme  domain.Theme // Target theme; ignored when Toggle is set
	Toggle bool         // Flip between light and dark
}

// SetThemeOutput contains the result of changing the theme.
type SetThemeOutput struct {
	Theme domain.Theme // The now-active theme
}

// SetTheme is the use case for switching the UI color scheme.
type SetTheme struct {
	settings domain.SettingsRepository
}

// NewSetTheme creates a new SetTheme use case.
func NewSetTheme(settings domain.SettingsRepository) *SetTheme {
	return &SetTheme{
		settings: settings,
	}
}

// Execute sets or toggles the theme and persists it.
func (uc *SetTheme) Execute(_ context.Context, in SetThemeInput) (*SetThemeOutput, error) {
	theme := in.Theme
	if in.Toggle {
		theme = uc.settings.Theme().Toggle()
	} else if !theme.IsValid() {
		return nil, domain.ErrInvalidTheme
	}

	if err := uc.settings.SetTheme(theme); err != nil {
		return nil, fmt.Errorf("save theme: %w", err)
	}

	return &SetThemeOutput{Theme: theme}, nil
}
