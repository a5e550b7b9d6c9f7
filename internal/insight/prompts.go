package insight

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/julianstephens/vitalflow/internal/models"
)

// Prompt templates are embedded rather than loaded from disk: a single-binary
// CLI ships no asset directory.
const entryTemplateText = `You are a supportive wellness companion. A user just completed their daily mood check-in.

Today's mood: {{.Mood}}/10
Journal entry: {{.Journal}}
Their wellness goal: {{.Goal}}
{{- if .RecentMoods}}
Recent mood scores (newest first): {{.RecentMoods}}
{{- end}}

Write a short, warm, personalized wellness insight (2-4 sentences) responding to what they wrote. Acknowledge how they feel, connect it to their goal where natural, and offer one gentle, practical suggestion. Do not diagnose, and do not mention that you are an AI.`

const patternTemplateText = `You are a supportive wellness companion analyzing {{.Name}}'s mood journal.

Their check-in history (most recent first):
{{- range .Entries}}
- {{.Date}}: mood {{.Mood}}/10 - {{.Journal}}
{{- end}}

Write a short analysis (3-5 sentences) of the patterns you see: mood trends, recurring themes in their writing, and what seems to help or hurt. Address {{.Name}} directly, keep the tone encouraging, and close with one concrete suggestion. Do not diagnose, and do not mention that you are an AI.`

var (
	entryTemplate   = template.Must(template.New("entry").Parse(entryTemplateText))
	patternTemplate = template.Must(template.New("pattern").Parse(patternTemplateText))
)

type entryPromptData struct {
	Mood        int
	Journal     string
	Goal        string
	RecentMoods string
}

type patternPromptData struct {
	Name    string
	Entries []models.CheckIn
}

// BuildEntryPrompt assembles the single-entry insight prompt from the current
// mood, journal text, the user's goal, and up to the last 7 prior mood scores.
func BuildEntryPrompt(mood int, journalText, goal string, recentMoods []int) (string, error) {
	if strings.TrimSpace(journalText) == "" {
		return "", ErrEmptyJournal
	}

	moods := make([]string, 0, len(recentMoods))
	for _, m := range recentMoods {
		moods = append(moods, fmt.Sprintf("%d", m))
	}

	data := entryPromptData{
		Mood:        mood,
		Journal:     journalText,
		Goal:        goal,
		RecentMoods: strings.Join(moods, ", "),
	}

	var buf bytes.Buffer
	if err := entryTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute entry prompt template: %w", err)
	}
	return buf.String(), nil
}

// BuildPatternPrompt assembles the cross-entry analysis prompt from the full
// check-in history and the user's name.
func BuildPatternPrompt(entries []models.CheckIn, userName string) (string, error) {
	if userName == "" {
		userName = models.DefaultName
	}

	data := patternPromptData{
		Name:    userName,
		Entries: entries,
	}

	var buf bytes.Buffer
	if err := patternTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute pattern prompt template: %w", err)
	}
	return buf.String(), nil
}
