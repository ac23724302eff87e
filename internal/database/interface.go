package database

import (
	"context"

	"github.com/akyairhashvil/taskloot/internal/models"
)

// GrantRepository defines grant-history database operations.
//
//go:generate mockgen -source=interface.go -destination=mock_repository_test.go -package=database
type GrantRepository interface {
	AddGrant(ctx context.Context, g models.Grant) (int64, error)
	RecentGrants(ctx context.Context, limit int) ([]models.Grant, error)
	GrantsForDay(ctx context.Context, date string) ([]models.Grant, error)
	TopRewards(ctx context.Context, limit int) ([]RewardCount, error)
	CountGrants(ctx context.Context) (int, error)
	ClearGrants(ctx context.Context) error
}

var _ GrantRepository = (*Database)(nil)
