// Package rewards implements the reward pipeline: parsing candidate
// entries from the rewards file, rolling a weighted pick, and running the
// completion flow that writes notes and records grant history.
package rewards

import (
	"regexp"
	"strings"

	"github.com/akyairhashvil/taskloot/internal/models"
)

var (
	listPrefixes = []string{"- ", "* ", "+ "}
	urlRegex     = regexp.MustCompile(`^https?://\S+$`)
)

// ParseRewards extracts reward candidates from rewards-file content. Each
// Markdown list entry is one candidate. Tokens between the configured
// escape characters carry metadata: a tier label (matched against the
// occurrence types, case-insensitive) or a link; unrecognized tokens are
// stripped. Untagged entries fall into tier 0. Checkbox state is ignored,
// a ticked entry is still a valid reward.
func ParseRewards(content string, s *models.Settings) []models.Reward {
	var rewards []models.Reward
	for i, raw := range strings.Split(content, "\n") {
		body, ok := stripListPrefix(strings.TrimSpace(strings.TrimSuffix(raw, "\r")))
		if !ok {
			continue
		}
		body = stripCheckbox(body, s.CompletedTaskCharacter)
		clean, tokens := extractTokens(body, s.EscapeCharacterBegin, s.EscapeCharacterEnd)
		text := strings.Join(strings.Fields(clean), " ")
		if text == "" {
			continue
		}

		r := models.Reward{Text: text, Line: i + 1}
		tierSet := false
		for _, token := range tokens {
			if !tierSet {
				if tier, ok := tierIndex(s, token); ok {
					r.Tier = tier
					tierSet = true
					continue
				}
			}
			if r.Link == nil && isLink(token) {
				link := token
				r.Link = &link
			}
		}
		rewards = append(rewards, r)
	}
	return rewards
}

func stripListPrefix(line string) (string, bool) {
	for _, p := range listPrefixes {
		if strings.HasPrefix(line, p) {
			return strings.TrimSpace(strings.TrimPrefix(line, p)), true
		}
	}
	return "", false
}

// stripCheckbox removes a leading task checkbox. The box must hold a
// single state mark: a space, one rune, or the configured completed-task
// marker. Anything else (wikilinks, bracketed text) stays part of the
// reward.
func stripCheckbox(body, marker string) string {
	if !strings.HasPrefix(body, "[") {
		return body
	}
	end := strings.Index(body, "]")
	if end < 1 {
		return body
	}
	inner := body[1:end]
	if inner != " " && inner != marker && len([]rune(inner)) != 1 {
		return body
	}
	if strings.Contains(inner, "[") {
		return body
	}
	return strings.TrimSpace(body[end+1:])
}

// extractTokens splits the metadata between begin and end markers out of
// text. A degenerate marker configuration disables metadata entirely.
func extractTokens(text, begin, end string) (string, []string) {
	if begin == "" || end == "" || begin == end {
		return text, nil
	}

	var clean strings.Builder
	var tokens []string
	rest := text
	for {
		i := strings.Index(rest, begin)
		if i < 0 {
			clean.WriteString(rest)
			break
		}
		j := strings.Index(rest[i+len(begin):], end)
		if j < 0 {
			clean.WriteString(rest)
			break
		}
		clean.WriteString(rest[:i])
		if token := strings.TrimSpace(rest[i+len(begin) : i+len(begin)+j]); token != "" {
			tokens = append(tokens, token)
		}
		rest = rest[i+len(begin)+j+len(end):]
	}
	return clean.String(), tokens
}

func tierIndex(s *models.Settings, token string) (int, bool) {
	for i, ot := range s.OccurrenceTypes {
		if strings.EqualFold(token, ot.Label) {
			return i, true
		}
	}
	return 0, false
}

func isLink(token string) bool {
	if urlRegex.MatchString(token) {
		return true
	}
	return strings.HasPrefix(token, "[[") && strings.HasSuffix(token, "]]") && len(token) > 4
}
