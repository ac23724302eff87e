// Package store persists the settings record as a JSON document in the
// user data directory. Loading merges the persisted partial document over
// the built-in defaults, then repairs anything that violates the settings
// invariants, so callers always receive a usable record.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/akyairhashvil/taskloot/internal/config"
	"github.com/akyairhashvil/taskloot/internal/models"
	"github.com/akyairhashvil/taskloot/internal/util"
)

// Store loads and saves the settings record.
type Store interface {
	Load() (*models.Settings, error)
	Save(*models.Settings) error
}

// File is a Store backed by a single JSON file.
type File struct {
	Path string
}

// NewFile returns a file store at path, or at the default location under
// the user data directory when path is empty.
func NewFile(path string) *File {
	if path == "" {
		path = filepath.Join(util.DataDir(config.AppName), config.SettingsFileName)
	}
	return &File{Path: path}
}

// Load reads the persisted settings. A missing file yields pure defaults.
// Persisted keys override defaults; missing keys keep their default value.
func (f *File) Load() (*models.Settings, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.DefaultSettings(), nil
		}
		return nil, fmt.Errorf("read settings: %w", err)
	}

	s := models.DefaultSettings()
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	sanitize(s)
	return s, nil
}

// Save writes the settings atomically (temp file, then rename).
func (f *File) Save(s *models.Settings) error {
	if err := os.MkdirAll(filepath.Dir(f.Path), 0755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	tmp := f.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	if err := os.Rename(tmp, f.Path); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

// sanitize repairs a loaded record in place: exactly three occurrence
// tiers with in-range values and non-empty labels, non-empty markers, a
// usable rewards file path, and well-formed or absent section headings.
func sanitize(s *models.Settings) {
	d := models.DefaultSettings()

	if s.CompletedTaskCharacter == "" {
		s.CompletedTaskCharacter = d.CompletedTaskCharacter
	}
	if s.EscapeCharacterBegin == "" {
		s.EscapeCharacterBegin = d.EscapeCharacterBegin
	}
	if s.EscapeCharacterEnd == "" {
		s.EscapeCharacterEnd = d.EscapeCharacterEnd
	}

	if len(s.OccurrenceTypes) > config.OccurrenceTierCount {
		s.OccurrenceTypes = s.OccurrenceTypes[:config.OccurrenceTierCount]
	}
	for len(s.OccurrenceTypes) < config.OccurrenceTierCount {
		s.OccurrenceTypes = append(s.OccurrenceTypes, d.OccurrenceTypes[len(s.OccurrenceTypes)])
	}
	for i := range s.OccurrenceTypes {
		if s.OccurrenceTypes[i].Label == "" {
			s.OccurrenceTypes[i].Label = d.OccurrenceTypes[i].Label
		}
		s.OccurrenceTypes[i].Value = util.ClampFloat(
			s.OccurrenceTypes[i].Value, config.MinOccurrenceChance, config.MaxOccurrenceChance)
	}

	if normalized := util.NormalizePath(s.RewardsFile); normalized == "" {
		s.RewardsFile = d.RewardsFile
	} else {
		s.RewardsFile = normalized
	}

	if s.SaveRewardSectionHeading != nil && !models.ValidSectionHeading(*s.SaveRewardSectionHeading) {
		s.SaveRewardSectionHeading = nil
	}
	if s.SaveTaskSectionHeading != nil && !models.ValidSectionHeading(*s.SaveTaskSectionHeading) {
		s.SaveTaskSectionHeading = nil
	}
}
