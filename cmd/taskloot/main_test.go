package main

import (
	"bytes"
	"context"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/akyairhashvil/taskloot/internal/database"
	"github.com/akyairhashvil/taskloot/internal/models"
)

func TestAppDataDirOverride(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	dataDir = dir
	t.Cleanup(func() { dataDir = "" })

	got, err := appDataDir()
	if err != nil {
		t.Fatalf("appDataDir failed: %v", err)
	}
	if got != dir {
		t.Errorf("data dir = %q, want the override", got)
	}
}

func TestOpenStoreRoundTrip(t *testing.T) {
	dataDir = filepath.Join(t.TempDir(), "data")
	t.Cleanup(func() { dataDir = "" })

	st, s, err := openStore()
	if err != nil {
		t.Fatalf("openStore failed: %v", err)
	}
	if !reflect.DeepEqual(s, models.DefaultSettings()) {
		t.Errorf("fresh store should load defaults: %+v", s)
	}

	s.RewardPreface = "Loot:"
	if err := st.Save(s); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	_, again, err := openStore()
	if err != nil {
		t.Fatalf("openStore failed: %v", err)
	}
	if again.RewardPreface != "Loot:" {
		t.Errorf("preface = %q after reload", again.RewardPreface)
	}
}

func TestPrintHistory(t *testing.T) {
	ctx := context.Background()
	db, err := database.Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("db close failed: %v", err)
		}
	})
	for _, g := range []models.Grant{
		{Task: "Write report", Reward: "Tea", Tier: "rare", Chance: 5},
		{Reward: "Board games", Tier: "common", Chance: 20},
	} {
		if _, err := db.AddGrant(ctx, g); err != nil {
			t.Fatalf("AddGrant failed: %v", err)
		}
	}

	var buf bytes.Buffer
	if err := printHistory(ctx, db, &buf); err != nil {
		t.Fatalf("printHistory failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"2 rewards", "[rare 5%] Tea (for: Write report)", "[common 20%] Board games"} {
		if !strings.Contains(out, want) {
			t.Errorf("listing missing %q:\n%s", want, out)
		}
	}
}

func TestExportPathDefaultsToReportsDir(t *testing.T) {
	docs := t.TempDir()
	t.Setenv("XDG_DOCUMENTS_DIR", docs)
	exportOut = ""

	path, err := exportPath("pdf")
	if err != nil {
		t.Fatalf("exportPath failed: %v", err)
	}
	if !strings.HasPrefix(path, filepath.Join(docs, "TASKLOOT")) {
		t.Errorf("path = %q, want it under the reports dir", path)
	}
	if !strings.HasSuffix(path, ".pdf") {
		t.Errorf("path = %q, want the requested extension", path)
	}
}

func TestExportPathHonorsOut(t *testing.T) {
	exportOut = filepath.Join(t.TempDir(), "backup.json")
	t.Cleanup(func() { exportOut = "" })

	path, err := exportPath("json")
	if err != nil {
		t.Fatalf("exportPath failed: %v", err)
	}
	if path != exportOut {
		t.Errorf("path = %q, want the explicit --out value", path)
	}
}

func TestHistoryClearRequiresConfirmation(t *testing.T) {
	clearYes = false
	if err := runHistoryClear(historyClearCmd, nil); err == nil {
		t.Errorf("clear without --yes should refuse")
	}
}
