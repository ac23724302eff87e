package rewards

//go:generate mockgen -source=engine.go -destination=mock_engine_test.go -package=rewards

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/akyairhashvil/taskloot/internal/models"
	"github.com/akyairhashvil/taskloot/internal/util"
)

// ErrRewardsFileMissing is returned when the configured rewards file does
// not exist in the vault.
var ErrRewardsFileMissing = errors.New("rewards file missing")

// Vault is the Markdown workspace the engine reads rewards from and
// writes notes into.
type Vault interface {
	ReadRewardsFile(path string) (string, error)
	AppendUnderHeading(file string, heading *string, line string) error
	MarkTaskDone(file, task, marker string) (bool, error)
	DailyNotePath(t time.Time) string
}

// History records granted rewards.
type History interface {
	AddGrant(ctx context.Context, g models.Grant) (int64, error)
}

// Outcome describes what a completion produced.
type Outcome struct {
	Reward        models.Reward
	Tier          models.OccurrenceType
	Task          string
	Preface       string
	Inspirational bool
	MarkedDone    bool
	SavedReward   bool
	SavedTask     bool
	Grant         *models.Grant
}

// CompleteOptions carries the optional parts of a completion request.
type CompleteOptions struct {
	// TaskNote is the vault-relative note holding the task's checkbox.
	// Empty means no note to mark.
	TaskNote string
	// DailyNote overrides the note the save-to-daily writes target.
	// Empty means today's daily note.
	DailyNote string
}

// Engine runs the completion flow against a vault and a history store.
type Engine struct {
	settings *models.Settings
	vault    Vault
	history  History
	picker   *Picker
}

// NewEngine wires an engine. A nil picker gets a time-seeded one.
func NewEngine(s *models.Settings, v Vault, h History, p *Picker) *Engine {
	if p == nil {
		p = NewPicker(nil)
	}
	return &Engine{settings: s, vault: v, history: h, picker: p}
}

// Complete resolves a finished task into a reward. It reads and parses
// the rewards file, rolls a pick, and then applies the configured side
// effects: marking the task's checkbox, appending reward and task lines
// to today's daily note, and recording the grant. Side-effect failures
// are logged and reflected in the outcome rather than aborting the flow;
// only an unreadable rewards file or an empty candidate list is fatal.
func (e *Engine) Complete(ctx context.Context, task string, opts CompleteOptions) (*Outcome, error) {
	content, err := e.vault.ReadRewardsFile(e.settings.RewardsFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrRewardsFileMissing, e.settings.RewardsFile)
		}
		return nil, fmt.Errorf("read rewards file %s: %w", e.settings.RewardsFile, err)
	}

	candidates := ParseRewards(content, e.settings)
	if len(candidates) == 0 {
		return nil, ErrNoRewards
	}

	if e.settings.UseAsInspirational {
		reward, err := e.picker.PickUniform(candidates)
		if err != nil {
			return nil, err
		}
		return &Outcome{
			Reward:        reward,
			Tier:          e.settings.OccurrenceTypes[normalTier(e.settings, reward.Tier)],
			Task:          task,
			Inspirational: true,
		}, nil
	}

	reward, err := e.picker.Pick(candidates, e.settings)
	if err != nil {
		return nil, err
	}

	tier := normalTier(e.settings, reward.Tier)
	out := &Outcome{
		Reward:  reward,
		Tier:    e.settings.OccurrenceTypes[tier],
		Task:    task,
		Preface: e.settings.RewardPreface,
	}

	if opts.TaskNote != "" {
		marked, err := e.vault.MarkTaskDone(opts.TaskNote, task, e.settings.CompletedTaskCharacter)
		util.LogError("mark task done", err)
		out.MarkedDone = marked
	}

	if e.settings.SaveRewardToDaily || e.settings.SaveTaskToDaily {
		daily := opts.DailyNote
		if daily == "" {
			daily = e.vault.DailyNotePath(time.Now())
		}
		if e.settings.SaveRewardToDaily {
			err := e.vault.AppendUnderHeading(daily, e.settings.SaveRewardSectionHeading, rewardLine(e.settings.RewardPreface, reward))
			util.LogError("save reward to daily note", err)
			out.SavedReward = err == nil
		}
		if e.settings.SaveTaskToDaily {
			err := e.vault.AppendUnderHeading(daily, e.settings.SaveTaskSectionHeading, taskLine(task, e.settings.CompletedTaskCharacter))
			util.LogError("save task to daily note", err)
			out.SavedTask = err == nil
		}
	}

	grant := models.Grant{
		Task:         task,
		Reward:       reward.Text,
		Tier:         e.settings.OccurrenceTypes[tier].Label,
		Chance:       e.settings.OccurrenceTypes[tier].Value,
		Link:         reward.Link,
		SavedToDaily: out.SavedReward,
	}
	id, err := e.history.AddGrant(ctx, grant)
	util.LogError("record grant", err)
	if err == nil {
		grant.ID = id
		out.Grant = &grant
	}
	return out, nil
}

// rewardLine renders the daily-note entry for a granted reward. The box
// stays unchecked so the reward can be ticked off once claimed.
func rewardLine(preface string, r models.Reward) string {
	text := strings.TrimSpace(preface + " " + r.Text)
	if r.Link != nil {
		text += " " + *r.Link
	}
	return "- [ ] " + text
}

func taskLine(task, marker string) string {
	return "- [" + marker + "] " + task
}

func normalTier(s *models.Settings, tier int) int {
	if tier < 0 || tier >= len(s.OccurrenceTypes) {
		return 0
	}
	return tier
}
