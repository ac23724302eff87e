// Package vault reads and edits the Markdown notes of a workspace
// directory: the rewards file, task notes, and daily notes.
package vault

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/akyairhashvil/taskloot/internal/config"
	"github.com/akyairhashvil/taskloot/internal/rewards"
)

// Vault is a directory of Markdown notes. Paths passed to its methods are
// vault-relative slash paths.
type Vault struct {
	Root string
}

var _ rewards.Vault = (*Vault)(nil)

func New(root string) *Vault {
	return &Vault{Root: root}
}

func (v *Vault) abs(rel string) string {
	return filepath.Join(v.Root, filepath.FromSlash(rel))
}

// ReadRewardsFile returns the rewards file content. The raw error is
// returned so callers can test for fs.ErrNotExist.
func (v *Vault) ReadRewardsFile(path string) (string, error) {
	b, err := os.ReadFile(v.abs(path))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DailyNotePath names today's daily note for a given time, relative to
// the vault root.
func (v *Vault) DailyNotePath(t time.Time) string {
	return t.Format(config.DailyNoteLayout) + ".md"
}

// AppendUnderHeading appends line to file, placed at the end of the
// section opened by heading. A nil heading appends at the end of the
// note. Missing files and missing headings are created.
func (v *Vault) AppendUnderHeading(file string, heading *string, line string) error {
	path := v.abs(file)
	content := ""
	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		content = string(b)
	case errors.Is(err, fs.ErrNotExist):
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("create note directory: %w", err)
		}
	default:
		return fmt.Errorf("read note %s: %w", file, err)
	}

	updated := insertLine(content, heading, line)
	if err := writeNote(path, []byte(updated)); err != nil {
		return fmt.Errorf("write note %s: %w", file, err)
	}
	return nil
}

// MarkTaskDone ticks the first unchecked box whose line contains task,
// replacing the empty state with the configured marker. It reports
// whether a line was changed.
func (v *Vault) MarkTaskDone(file, task, marker string) (bool, error) {
	path := v.abs(file)
	b, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("read note %s: %w", file, err)
	}

	lines := strings.Split(string(b), "\n")
	for i, l := range lines {
		if !strings.Contains(l, "[ ]") || !strings.Contains(l, task) {
			continue
		}
		lines[i] = strings.Replace(l, "[ ]", "["+marker+"]", 1)
		if err := writeNote(path, []byte(strings.Join(lines, "\n"))); err != nil {
			return false, fmt.Errorf("write note %s: %w", file, err)
		}
		return true, nil
	}
	return false, nil
}

// writeNote replaces a note through a temp file so a failed write never
// truncates the user's original.
func writeNote(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// insertLine splices line into content below heading. Heading lines
// match exactly, ignoring trailing whitespace; a section runs until the
// next heading. The result always ends with a single newline.
func insertLine(content string, heading *string, line string) string {
	norm := strings.ReplaceAll(content, "\r\n", "\n")
	var lines []string
	if norm != "" {
		lines = strings.Split(strings.TrimSuffix(norm, "\n"), "\n")
	}

	if heading == nil {
		lines = append(lines, line)
		return strings.Join(lines, "\n") + "\n"
	}

	want := strings.TrimRight(*heading, " \t")
	idx := -1
	for i, l := range lines {
		if strings.TrimRight(l, " \t") == want {
			idx = i
			break
		}
	}
	if idx < 0 {
		if len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) != "" {
			lines = append(lines, "")
		}
		lines = append(lines, want, line)
		return strings.Join(lines, "\n") + "\n"
	}

	end := len(lines)
	for i := idx + 1; i < len(lines); i++ {
		if strings.HasPrefix(lines[i], "#") {
			end = i
			break
		}
	}
	insert := end
	for insert > idx+1 && strings.TrimSpace(lines[insert-1]) == "" {
		insert--
	}

	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[:insert]...)
	out = append(out, line)
	out = append(out, lines[insert:]...)
	return strings.Join(out, "\n") + "\n"
}
