package tui

import (
	"context"

	"github.com/akyairhashvil/taskloot/internal/database"
	"github.com/akyairhashvil/taskloot/internal/models"
)

// Database defines the persistence methods the TUI requires.
type Database interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error

	RecentGrants(ctx context.Context, limit int) ([]models.Grant, error)
	TopRewards(ctx context.Context, limit int) ([]database.RewardCount, error)
	CountGrants(ctx context.Context) (int, error)
}
