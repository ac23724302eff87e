package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/akyairhashvil/taskloot/internal/config"
	"github.com/akyairhashvil/taskloot/internal/database"
	"github.com/akyairhashvil/taskloot/internal/models"
	"github.com/akyairhashvil/taskloot/internal/store"
	"github.com/akyairhashvil/taskloot/internal/tui"
	"github.com/akyairhashvil/taskloot/internal/util"
)

// appDataDir resolves the directory holding settings.json and the
// history database, creating it when missing.
func appDataDir() (string, error) {
	dir := dataDir
	if dir == "" {
		dir = util.DataDir(config.AppName)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create data dir %s: %w", dir, err)
	}
	return dir, nil
}

func openStore() (store.Store, *models.Settings, error) {
	dir, err := appDataDir()
	if err != nil {
		return nil, nil, err
	}
	st := store.NewFile(filepath.Join(dir, config.SettingsFileName))
	s, err := st.Load()
	if err != nil {
		return nil, nil, err
	}
	return st, s, nil
}

func openDatabase(ctx context.Context) (*database.Database, error) {
	dir, err := appDataDir()
	if err != nil {
		return nil, err
	}
	return database.Open(ctx, filepath.Join(dir, config.DBFileName))
}

// activeTheme reads the persisted theme choice; the history TUI is where
// it gets changed.
func activeTheme(ctx context.Context, db tui.Database) tui.Theme {
	name, ok := db.GetSetting(ctx, tui.ThemeSettingKey)
	if !ok {
		name = tui.ThemeOrder[0]
	}
	return tui.ResolveTheme(name)
}

// reportsDir resolves the directory exported reports land in, creating
// it when missing.
func reportsDir() (string, error) {
	dir := util.ReportsDir(config.AppName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create reports dir %s: %w", dir, err)
	}
	return dir, nil
}
