// Package chat defines the conversation message envelope accepted by
// the chat endpoint and its validation rules. Messages are immutable
// once constructed; validation reads, never rewrites.
package chat

import (
	"bytes"
	"encoding/json"
	"errors"
)

// Role labels for incoming messages. The upstream provider uses
// "model" instead of "assistant"; that remap happens at assembly time,
// never here.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// MaxMessages bounds the conversation length a single request may carry.
const MaxMessages = 50

// Message is a single conversation turn supplied by the client.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Validation errors, worded exactly as surfaced to clients.
var (
	ErrNotArray        = errors.New("Messages must be an array")
	ErrEmpty           = errors.New("Messages cannot be empty")
	ErrTooMany         = errors.New("Too many messages. Please start a new conversation.")
	ErrInvalidFormat   = errors.New("Invalid message format")
	ErrInvalidRole     = errors.New("Invalid message role")
	ErrContentNotText  = errors.New("Message content must be a string")
	ErrLastNotFromUser = errors.New("Last message must be from user")
)

// rawMessage defers decoding of both fields so their JSON types can be
// inspected before committing to strings.
type rawMessage struct {
	Role    json.RawMessage `json:"role"`
	Content json.RawMessage `json:"content"`
}

// falsy reports whether the raw value is absent or one of the JSON
// values a loosely-typed client check would treat as unset.
func falsy(raw json.RawMessage) bool {
	switch string(bytes.TrimSpace(raw)) {
	case "", "null", `""`, "0", "false":
		return true
	}
	return false
}

// ParseMessages decodes the raw messages field of a chat request and
// validates the envelope, distinguishing type errors the typed Message
// struct would swallow: a non-array field (including null or a missing
// field) is ErrNotArray, a non-object entry is ErrInvalidFormat, and
// non-string content is ErrContentNotText. Checks run in envelope
// order, so length violations surface before per-message ones.
func ParseMessages(raw json.RawMessage) ([]Message, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrNotArray
	}

	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, ErrNotArray
	}
	if len(items) == 0 {
		return nil, ErrEmpty
	}
	if len(items) > MaxMessages {
		return nil, ErrTooMany
	}

	messages := make([]Message, 0, len(items))
	for _, item := range items {
		var rm rawMessage
		if err := json.Unmarshal(item, &rm); err != nil {
			return nil, ErrInvalidFormat
		}
		if falsy(rm.Role) || falsy(rm.Content) {
			return nil, ErrInvalidFormat
		}

		var msg Message
		if err := json.Unmarshal(rm.Role, &msg.Role); err != nil {
			return nil, ErrInvalidRole
		}
		if msg.Role != RoleUser && msg.Role != RoleAssistant {
			return nil, ErrInvalidRole
		}
		if err := json.Unmarshal(rm.Content, &msg.Content); err != nil {
			return nil, ErrContentNotText
		}

		messages = append(messages, msg)
	}

	if err := Validate(messages); err != nil {
		return nil, err
	}

	return messages, nil
}

// Validate checks the message envelope: non-empty, at most MaxMessages
// entries, every message carrying a known role and non-empty content,
// and the final message authored by the user. Returns the first
// violation found, nil when the envelope is well formed.
func Validate(messages []Message) error {
	if len(messages) == 0 {
		return ErrEmpty
	}
	if len(messages) > MaxMessages {
		return ErrTooMany
	}

	for _, msg := range messages {
		if msg.Role == "" || msg.Content == "" {
			return ErrInvalidFormat
		}
		if msg.Role != RoleUser && msg.Role != RoleAssistant {
			return ErrInvalidRole
		}
	}

	if messages[len(messages)-1].Role != RoleUser {
		return ErrLastNotFromUser
	}

	return nil
}
