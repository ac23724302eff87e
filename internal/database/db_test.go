package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/akyairhashvil/taskloot/internal/models"
	"github.com/akyairhashvil/taskloot/internal/util"
)

func setupTestDB(t *testing.T, ctx context.Context) *Database {
	t.Helper()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "test.db")
	db, err := Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("db close failed: %v", err)
		}
	})
	return db
}

func TestOpenMigrationsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	if err := db.Close(); err != nil {
		t.Fatalf("db close failed: %v", err)
	}
	reopened, err := Open(ctx, db.dbFile)
	if err != nil {
		t.Fatalf("Open second run failed: %v", err)
	}
	if err := reopened.Close(); err != nil {
		t.Fatalf("reopened close failed: %v", err)
	}
}

func TestGrantLifecycle(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	id, err := db.AddGrant(ctx, models.Grant{
		Task:         "Write the report",
		Reward:       "One episode of something trashy",
		Tier:         "rare",
		Chance:       5,
		Link:         util.Ptr("https://example.com/shows"),
		SavedToDaily: true,
	})
	if err != nil {
		t.Fatalf("AddGrant failed: %v", err)
	}
	if id == 0 {
		t.Fatalf("AddGrant returned zero ID")
	}

	count, err := db.CountGrants(ctx)
	if err != nil {
		t.Fatalf("CountGrants failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 grant, got %d", count)
	}

	grants, err := db.RecentGrants(ctx, 10)
	if err != nil {
		t.Fatalf("RecentGrants failed: %v", err)
	}
	if len(grants) != 1 {
		t.Fatalf("expected 1 grant, got %d", len(grants))
	}
	g := grants[0]
	if g.Task != "Write the report" || g.Reward != "One episode of something trashy" {
		t.Fatalf("grant fields did not round-trip: %+v", g)
	}
	if g.Tier != "rare" || g.Chance != 5 {
		t.Fatalf("tier snapshot did not round-trip: %+v", g)
	}
	if g.Link == nil || *g.Link != "https://example.com/shows" {
		t.Fatalf("link did not round-trip: %v", g.Link)
	}
	if !g.SavedToDaily {
		t.Fatalf("saved_to_daily did not round-trip")
	}
	if g.GrantedAt.IsZero() {
		t.Fatalf("granted_at was not assigned")
	}

	day := g.GrantedAt.Format("2006-01-02")
	forDay, err := db.GrantsForDay(ctx, day)
	if err != nil {
		t.Fatalf("GrantsForDay failed: %v", err)
	}
	if len(forDay) != 1 || forDay[0].ID != g.ID {
		t.Fatalf("expected grant in day listing for %s, got %+v", day, forDay)
	}
}

func TestAddGrantWithoutLink(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	if _, err := db.AddGrant(ctx, models.Grant{
		Task:   "Inbox zero",
		Reward: "Fancy coffee",
		Tier:   "common",
		Chance: 20,
	}); err != nil {
		t.Fatalf("AddGrant failed: %v", err)
	}
	grants, err := db.RecentGrants(ctx, 1)
	if err != nil {
		t.Fatalf("RecentGrants failed: %v", err)
	}
	if len(grants) != 1 {
		t.Fatalf("expected 1 grant, got %d", len(grants))
	}
	if grants[0].Link != nil {
		t.Fatalf("expected nil link, got %v", *grants[0].Link)
	}
	if grants[0].SavedToDaily {
		t.Fatalf("expected saved_to_daily false")
	}
}

func TestRecentGrantsLimitAndOrder(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	for _, reward := range []string{"first", "second", "third"} {
		if _, err := db.AddGrant(ctx, models.Grant{
			Task: "task", Reward: reward, Tier: "common", Chance: 20,
		}); err != nil {
			t.Fatalf("AddGrant failed: %v", err)
		}
	}

	grants, err := db.RecentGrants(ctx, 2)
	if err != nil {
		t.Fatalf("RecentGrants failed: %v", err)
	}
	if len(grants) != 2 {
		t.Fatalf("expected 2 grants, got %d", len(grants))
	}
	if grants[0].Reward != "third" || grants[1].Reward != "second" {
		t.Fatalf("expected newest first, got %q then %q", grants[0].Reward, grants[1].Reward)
	}
}

func TestGrantsForDayFiltersOtherDates(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	if _, err := db.DB.ExecContext(ctx, `
		INSERT INTO grants (task, reward, tier, chance, granted_at)
		VALUES ('old task', 'old reward', 'common', 20, '2000-01-01 10:00:00')`); err != nil {
		t.Fatalf("insert old grant failed: %v", err)
	}
	if _, err := db.AddGrant(ctx, models.Grant{
		Task: "new task", Reward: "new reward", Tier: "common", Chance: 20,
	}); err != nil {
		t.Fatalf("AddGrant failed: %v", err)
	}

	old, err := db.GrantsForDay(ctx, "2000-01-01")
	if err != nil {
		t.Fatalf("GrantsForDay failed: %v", err)
	}
	if len(old) != 1 || old[0].Reward != "old reward" {
		t.Fatalf("expected only the old grant, got %+v", old)
	}
}

func TestTopRewards(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	for _, reward := range []string{"tea", "tea", "tea", "walk", "walk", "nap"} {
		if _, err := db.AddGrant(ctx, models.Grant{
			Task: "task", Reward: reward, Tier: "common", Chance: 20,
		}); err != nil {
			t.Fatalf("AddGrant failed: %v", err)
		}
	}

	top, err := db.TopRewards(ctx, 2)
	if err != nil {
		t.Fatalf("TopRewards failed: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(top))
	}
	if top[0].Reward != "tea" || top[0].Count != 3 {
		t.Fatalf("expected tea x3 first, got %+v", top[0])
	}
	if top[1].Reward != "walk" || top[1].Count != 2 {
		t.Fatalf("expected walk x2 second, got %+v", top[1])
	}
}

func TestClearGrantsResetsIDs(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	for i := 0; i < 3; i++ {
		if _, err := db.AddGrant(ctx, models.Grant{
			Task: "task", Reward: "reward", Tier: "common", Chance: 20,
		}); err != nil {
			t.Fatalf("AddGrant failed: %v", err)
		}
	}
	if err := db.ClearGrants(ctx); err != nil {
		t.Fatalf("ClearGrants failed: %v", err)
	}
	count, err := db.CountGrants(ctx)
	if err != nil {
		t.Fatalf("CountGrants failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected empty history, got %d", count)
	}

	id, err := db.AddGrant(ctx, models.Grant{
		Task: "task", Reward: "reward", Tier: "common", Chance: 20,
	})
	if err != nil {
		t.Fatalf("AddGrant after clear failed: %v", err)
	}
	if id != 1 {
		t.Fatalf("expected IDs to restart at 1, got %d", id)
	}
}

func TestClearGrantsOnFreshDatabase(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	if err := db.ClearGrants(ctx); err != nil {
		t.Fatalf("ClearGrants on fresh database failed: %v", err)
	}
}

func TestSettingsKV(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	if _, ok := db.GetSetting(ctx, "theme"); ok {
		t.Fatalf("expected missing key")
	}
	if err := db.SetSetting(ctx, "theme", "dracula"); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}
	if got, ok := db.GetSetting(ctx, "theme"); !ok || got != "dracula" {
		t.Fatalf("GetSetting = %q, %v", got, ok)
	}
	if err := db.SetSetting(ctx, "theme", "default"); err != nil {
		t.Fatalf("SetSetting update failed: %v", err)
	}
	if got, _ := db.GetSetting(ctx, "theme"); got != "default" {
		t.Fatalf("expected upsert to replace value, got %q", got)
	}
}
