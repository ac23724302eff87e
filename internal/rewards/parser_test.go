package rewards

import (
	"reflect"
	"strings"
	"testing"

	"github.com/akyairhashvil/taskloot/internal/models"
	"github.com/akyairhashvil/taskloot/internal/util"
)

func TestParseRewards(t *testing.T) {
	s := models.DefaultSettings()
	content := strings.Join([]string{
		"# Rewards",
		"",
		"- Watch an episode",
		"* Eat a biscuit {rare}",
		"+ Buy that game {legendary} {https://store.example.com/game}",
		"- [ ] Long walk {RARE}",
		"- [x] One more coffee",
		"not a list line",
		"- {common}",
		"-",
	}, "\n")

	got := ParseRewards(content, s)
	want := []models.Reward{
		{Text: "Watch an episode", Tier: 0, Line: 3},
		{Text: "Eat a biscuit", Tier: 1, Line: 4},
		{Text: "Buy that game", Tier: 2, Link: util.Ptr("https://store.example.com/game"), Line: 5},
		{Text: "Long walk", Tier: 1, Line: 6},
		{Text: "One more coffee", Tier: 0, Line: 7},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseRewards mismatch:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestParseRewardsCustomEscapes(t *testing.T) {
	s := models.DefaultSettings()
	s.EscapeCharacterBegin = "<<"
	s.EscapeCharacterEnd = ">>"

	got := ParseRewards("- Tea <<rare>>\n- Coffee {rare}", s)
	if len(got) != 2 {
		t.Fatalf("expected 2 rewards, got %d", len(got))
	}
	if got[0].Text != "Tea" || got[0].Tier != 1 {
		t.Errorf("custom escapes not honored: %+v", got[0])
	}
	if got[1].Text != "Coffee {rare}" || got[1].Tier != 0 {
		t.Errorf("brace metadata should be plain text now: %+v", got[1])
	}
}

func TestParseRewardsDegenerateEscapes(t *testing.T) {
	s := models.DefaultSettings()
	s.EscapeCharacterBegin = "|"
	s.EscapeCharacterEnd = "|"

	got := ParseRewards("- Tea |rare|", s)
	if len(got) != 1 {
		t.Fatalf("expected 1 reward, got %d", len(got))
	}
	if got[0].Text != "Tea |rare|" || got[0].Tier != 0 {
		t.Errorf("identical markers must disable metadata: %+v", got[0])
	}
}

func TestParseRewardsWikilink(t *testing.T) {
	s := models.DefaultSettings()

	got := ParseRewards("- Game night {[[Board games]]} {rare}", s)
	if len(got) != 1 {
		t.Fatalf("expected 1 reward, got %d", len(got))
	}
	r := got[0]
	if r.Text != "Game night" || r.Tier != 1 {
		t.Errorf("unexpected reward: %+v", r)
	}
	if util.Deref(r.Link) != "[[Board games]]" {
		t.Errorf("wikilink token should become the link, got %v", r.Link)
	}
}

func TestParseRewardsWikilinkAsText(t *testing.T) {
	s := models.DefaultSettings()

	got := ParseRewards("- [[Fancy dinner]] with friends {rare}", s)
	if len(got) != 1 {
		t.Fatalf("expected 1 reward, got %d", len(got))
	}
	if got[0].Text != "[[Fancy dinner]] with friends" {
		t.Errorf("leading wikilink must not be treated as a checkbox, got %q", got[0].Text)
	}
	if got[0].Tier != 1 {
		t.Errorf("tier = %d, want 1", got[0].Tier)
	}
}

func TestParseRewardsUnknownTokenStripped(t *testing.T) {
	s := models.DefaultSettings()

	got := ParseRewards("- Ice cream {someday} {maybe}", s)
	if len(got) != 1 {
		t.Fatalf("expected 1 reward, got %d", len(got))
	}
	if got[0].Text != "Ice cream" || got[0].Tier != 0 || got[0].Link != nil {
		t.Errorf("unknown tokens should vanish: %+v", got[0])
	}
}

func TestParseRewardsFirstTierWins(t *testing.T) {
	s := models.DefaultSettings()

	got := ParseRewards("- Tea {rare} {legendary}", s)
	if len(got) != 1 || got[0].Tier != 1 {
		t.Fatalf("first tier token must win, got %+v", got)
	}
}

func TestParseRewardsCollapsesWhitespace(t *testing.T) {
	s := models.DefaultSettings()

	got := ParseRewards("-    Fancy   tea   {rare}  ", s)
	if len(got) != 1 || got[0].Text != "Fancy tea" {
		t.Fatalf("whitespace should collapse, got %+v", got)
	}
}

func TestParseRewardsCRLF(t *testing.T) {
	s := models.DefaultSettings()

	got := ParseRewards("- Tea {rare}\r\n- Coffee\r\n", s)
	if len(got) != 2 {
		t.Fatalf("expected 2 rewards, got %d", len(got))
	}
	if got[0].Text != "Tea" || got[1].Text != "Coffee" {
		t.Errorf("CRLF content mishandled: %+v", got)
	}
}

func TestParseRewardsEmptyContent(t *testing.T) {
	if got := ParseRewards("", models.DefaultSettings()); got != nil {
		t.Errorf("empty content should yield no rewards, got %+v", got)
	}
}

func TestStripCheckbox(t *testing.T) {
	tests := []struct {
		body   string
		marker string
		want   string
	}{
		{"[ ] task", "x", "task"},
		{"[x] task", "x", "task"},
		{"[-] task", "x", "task"},
		{"[done] task", "done", "task"},
		{"[30 min] of gaming", "x", "[30 min] of gaming"},
		{"[[Note]] reward", "x", "[[Note]] reward"},
		{"no box", "x", "no box"},
		{"[] odd", "x", "[] odd"},
	}
	for _, tt := range tests {
		if got := stripCheckbox(tt.body, tt.marker); got != tt.want {
			t.Errorf("stripCheckbox(%q, %q) = %q, want %q", tt.body, tt.marker, got, tt.want)
		}
	}
}

func TestExtractTokens(t *testing.T) {
	clean, tokens := extractTokens("Tea {rare} time {https://example.com} {unclosed", "{", "}")
	if strings.Join(strings.Fields(clean), " ") != "Tea time {unclosed" {
		t.Errorf("clean = %q", clean)
	}
	if !reflect.DeepEqual(tokens, []string{"rare", "https://example.com"}) {
		t.Errorf("tokens = %v", tokens)
	}
}
