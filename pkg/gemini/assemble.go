package gemini

import (
	"github.com/jivsocc/commandcenter/pkg/chat"
	"github.com/jivsocc/commandcenter/pkg/prompt"
	"github.com/jivsocc/commandcenter/pkg/sanitize"
)

// RoleModel is the provider-side name for assistant turns.
const RoleModel = "model"

// AssembleContents builds the full turn sequence sent upstream: the
// policy turn, the synthetic acknowledgment pinning the role, then the
// client conversation with assistant turns remapped to "model". Every
// historical turn is re-sanitized on the way through; the final user
// turn is replaced with sanitizedLatest, which the caller has already
// cleaned and classified.
func AssembleContents(history []chat.Message, sanitizedLatest string) []Content {
	contents := make([]Content, 0, len(history)+2)
	contents = append(contents,
		Content{Role: chat.RoleUser, Parts: []Part{{Text: prompt.Policy}}},
		Content{Role: RoleModel, Parts: []Part{{Text: prompt.Acknowledgment}}},
	)

	for i, msg := range history {
		role := chat.RoleUser
		if msg.Role == chat.RoleAssistant {
			role = RoleModel
		}

		text := sanitize.Clean(msg.Content)
		if i == len(history)-1 {
			text = sanitizedLatest
		}

		contents = append(contents, Content{Role: role, Parts: []Part{{Text: text}}})
	}

	return contents
}
