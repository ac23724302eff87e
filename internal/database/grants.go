package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/akyairhashvil/taskloot/internal/models"
	"github.com/akyairhashvil/taskloot/internal/util"
)

const grantColumns = `id, task, reward, tier, chance, link, saved_to_daily, granted_at`

func scanGrant(row interface{ Scan(...interface{}) error }) (models.Grant, error) {
	var g models.Grant
	var saved int
	if err := row.Scan(
		&g.ID,
		&g.Task,
		&g.Reward,
		&g.Tier,
		&g.Chance,
		&g.Link,
		&saved,
		&g.GrantedAt,
	); err != nil {
		return models.Grant{}, err
	}
	g.SavedToDaily = util.IntToBool(saved)
	return g, nil
}

// AddGrant records a rewarded completion and returns its ID. The granted_at
// timestamp is assigned by the database.
func (d *Database) AddGrant(ctx context.Context, g models.Grant) (int64, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	res, err := d.DB.ExecContext(ctx, `
		INSERT INTO grants (task, reward, tier, chance, link, saved_to_daily)
		VALUES (?, ?, ?, ?, ?, ?)`,
		g.Task, g.Reward, g.Tier, g.Chance, toNullableArg(g.Link), util.BoolToInt(g.SavedToDaily))
	if err != nil {
		return 0, wrapGrantErr("add", 0, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, wrapGrantErr("add", 0, err)
	}
	return id, nil
}

// RecentGrants returns the newest grants first, at most limit of them.
func (d *Database) RecentGrants(ctx context.Context, limit int) ([]models.Grant, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM grants
		ORDER BY granted_at DESC, id DESC
		LIMIT ?`, grantColumns)
	return d.queryGrants(ctx, "recent list", query, limit)
}

// GrantsForDay returns grants recorded on the given date (YYYY-MM-DD, UTC).
func (d *Database) GrantsForDay(ctx context.Context, date string) ([]models.Grant, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM grants
		WHERE strftime('%%Y-%%m-%%d', granted_at) = ?
		ORDER BY granted_at ASC, id ASC`, grantColumns)
	return d.queryGrants(ctx, "day list", query, date)
}

// RewardCount pairs a reward's text with how often it was granted.
type RewardCount struct {
	Reward string
	Count  int
}

// TopRewards returns the most frequently granted rewards.
func (d *Database) TopRewards(ctx context.Context, limit int) ([]RewardCount, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	rows, err := d.DB.QueryContext(ctx, `
		SELECT reward, COUNT(1) AS n
		FROM grants
		GROUP BY reward
		ORDER BY n DESC, reward ASC
		LIMIT ?`, limit)
	if err != nil {
		return nil, wrapGrantErr("top list", 0, err)
	}
	defer rows.Close()

	var out []RewardCount
	for rows.Next() {
		var rc RewardCount
		if err := rows.Scan(&rc.Reward, &rc.Count); err != nil {
			return nil, wrapGrantErr("top list", 0, err)
		}
		out = append(out, rc)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapGrantErr("top list", 0, err)
	}
	return out, nil
}

// CountGrants returns the total number of recorded grants.
func (d *Database) CountGrants(ctx context.Context) (int, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	var count int
	err := d.DB.QueryRowContext(ctx, "SELECT COUNT(1) FROM grants").Scan(&count)
	if err != nil {
		return 0, wrapGrantErr("count", 0, err)
	}
	return count, nil
}

// ClearGrants removes the entire grant history and resets ID assignment.
func (d *Database) ClearGrants(ctx context.Context) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM grants"); err != nil {
			return err
		}
		// sqlite_sequence only exists once an AUTOINCREMENT row was written.
		var seqTables int
		if err := tx.QueryRowContext(ctx,
			"SELECT COUNT(1) FROM sqlite_master WHERE type = 'table' AND name = 'sqlite_sequence'").Scan(&seqTables); err != nil {
			return err
		}
		if seqTables > 0 {
			if _, err := tx.ExecContext(ctx, "DELETE FROM sqlite_sequence WHERE name = 'grants'"); err != nil {
				return err
			}
		}
		return nil
	})
	return wrapGrantErr("clear", 0, err)
}

func (d *Database) queryGrants(ctx context.Context, op string, query string, args ...interface{}) ([]models.Grant, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	rows, err := d.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapGrantErr(op, 0, err)
	}
	defer rows.Close()

	var grants []models.Grant
	for rows.Next() {
		g, err := scanGrant(rows)
		if err != nil {
			return nil, wrapGrantErr(op, 0, err)
		}
		grants = append(grants, g)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapGrantErr(op, 0, err)
	}
	return grants, nil
}
