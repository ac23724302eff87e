package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/akyairhashvil/taskloot/internal/util"
)

type ExportGrant struct {
	ID           int64   `json:"id"`
	Task         string  `json:"task"`
	Reward       string  `json:"reward"`
	Tier         string  `json:"tier"`
	Chance       float64 `json:"chance"`
	Link         *string `json:"link,omitempty"`
	SavedToDaily bool    `json:"saved_to_daily,omitempty"`
	GrantedAt    string  `json:"granted_at"`
}

type HistoryExport struct {
	Grants []ExportGrant `json:"grants"`
}

// GetAllGrantsExport returns every grant in insertion order for export.
func (d *Database) GetAllGrantsExport(ctx context.Context) ([]ExportGrant, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	rows, err := d.DB.QueryContext(ctx, fmt.Sprintf(
		"SELECT %s FROM grants ORDER BY id ASC", grantColumns))
	if err != nil {
		return nil, wrapGrantErr("export", 0, err)
	}
	defer rows.Close()

	var out []ExportGrant
	for rows.Next() {
		g, err := scanGrant(rows)
		if err != nil {
			return nil, wrapGrantErr("export", 0, err)
		}
		eg := ExportGrant{
			ID:           g.ID,
			Task:         g.Task,
			Reward:       g.Reward,
			Tier:         g.Tier,
			Chance:       g.Chance,
			SavedToDaily: g.SavedToDaily,
			GrantedAt:    g.GrantedAt.Format(time.RFC3339),
		}
		if g.Link != nil {
			val := *g.Link
			eg.Link = &val
		}
		out = append(out, eg)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapGrantErr("export", 0, err)
	}
	return out, nil
}

// ExportHistory serializes the full grant history to JSON.
func (d *Database) ExportHistory(ctx context.Context) ([]byte, error) {
	grants, err := d.GetAllGrantsExport(ctx)
	if err != nil {
		return nil, err
	}
	return json.Marshal(HistoryExport{Grants: grants})
}

// ImportHistory loads exported grants into the database. Grants with an ID
// already present are replaced, everything else is appended.
func (d *Database) ImportHistory(ctx context.Context, payload []byte) error {
	var export HistoryExport
	if err := json.Unmarshal(payload, &export); err != nil {
		return fmt.Errorf("import history: %w", err)
	}

	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	return d.WithTx(ctx, func(tx *sql.Tx) error {
		for _, g := range export.Grants {
			var link interface{}
			if g.Link != nil {
				link = nullableString(*g.Link)
			}
			grantedAt := g.GrantedAt
			if grantedAt == "" {
				grantedAt = time.Now().UTC().Format(time.RFC3339)
			}
			if _, err := tx.ExecContext(ctx, `
				INSERT OR REPLACE INTO grants
				(id, task, reward, tier, chance, link, saved_to_daily, granted_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				g.ID, g.Task, g.Reward, g.Tier, g.Chance, link, util.BoolToInt(g.SavedToDaily), grantedAt,
			); err != nil {
				return fmt.Errorf("import grant %d: %w", g.ID, err)
			}
		}
		return nil
	})
}
