package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/FunsaiSushi/mazewalker/service/i"
	"github.com/google/uuid"
)

// Known theme values.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

const themeKeyFmt = "player:%s:theme"

var ErrUnknownTheme = errors.New("unknown theme")

// PreferenceService stores per-player display preferences on a plain
// key-value store.
type PreferenceService struct {
	store i.KeyValueStore
}

// NewPreferenceService creates a PreferenceService on the given store.
func NewPreferenceService(store i.KeyValueStore) (*PreferenceService, error) {
	if store == nil {
		return nil, errors.New("preference service requires a key-value store")
	}
	return &PreferenceService{store: store}, nil
}

// Theme returns the player's stored theme. An absent or corrupted value
// reads as unset.
func (p *PreferenceService) Theme(ctx context.Context, playerID uuid.UUID) (string, bool, error) {
	value, ok, err := p.store.Get(ctx, fmt.Sprintf(themeKeyFmt, playerID))
	if err != nil {
		return "", false, err
	}
	if !ok || (value != ThemeDark && value != ThemeLight) {
		return "", false, nil
	}
	return value, true, nil
}

// SetTheme stores the player's theme preference.
func (p *PreferenceService) SetTheme(ctx context.Context, playerID uuid.UUID, theme string) error {
	if theme != ThemeDark && theme != ThemeLight {
		return ErrUnknownTheme
	}
	return p.store.Set(ctx, fmt.Sprintf(themeKeyFmt, playerID), theme)
}
