// Package classify suggests labels for recipients that have no
// classification yet, using a Gemini model.
//
// Suggestions are advisory: nothing here ever writes to the mapping table,
// which stays user-curated.
package classify

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// DefaultModel is the model used when the caller does not pick one.
const DefaultModel = "gemini-2.5-flash"

// Suggestion is one proposed classification for a recipient.
type Suggestion struct {
	Recipient string `json:"recipient"`
	Label     string `json:"label"`
}

const promptHeader = `You classify bank transaction counterparties for a personal ledger.
For each recipient below, suggest one short spending label such as
"groceries", "rent", "salary", "insurance" or "leisure".
Respond with a JSON array of objects {"recipient": ..., "label": ...},
one per recipient, and nothing else.

Recipients:
`

// Suggest asks the model for one label per recipient. The recipients are
// typically the mapping rows whose classification fields are still blank.
func Suggest(ctx context.Context, client *genai.Client, model string, recipients []string) ([]Suggestion, error) {
	if len(recipients) == 0 {
		return nil, nil
	}
	if model == "" {
		model = DefaultModel
	}

	var b strings.Builder
	b.WriteString(promptHeader)
	for _, r := range recipients {
		fmt.Fprintf(&b, "- %s\n", r)
	}

	resp, err := client.Models.GenerateContent(ctx, model, genai.Text(b.String()),
		&genai.GenerateContentConfig{ResponseMIMEType: "application/json"})
	if err != nil {
		return nil, fmt.Errorf("generating suggestions: %w", err)
	}
	return parseSuggestions(resp.Text())
}

// parseSuggestions decodes the model's JSON answer. Models occasionally
// wrap JSON in a markdown fence even when asked not to, so fences are
// stripped before decoding.
func parseSuggestions(text string) ([]Suggestion, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var suggestions []Suggestion
	if err := json.Unmarshal([]byte(text), &suggestions); err != nil {
		return nil, fmt.Errorf("unexpected model answer %q: %w", text, err)
	}
	return suggestions, nil
}
