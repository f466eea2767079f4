package gemini

// Content is a single conversation turn in the generateContent wire
// format. Roles are "user" and "model"; there is no dedicated system
// role, which is why the role anchor ships as a leading user/model
// turn pair.
type Content struct {
	Role  string `json:"role"`
	Parts []Part `json:"parts"`
}

// Part is a text fragment within a turn.
type Part struct {
	Text string `json:"text"`
}

// generationConfig bounds the model's sampling behavior.
type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

// safetySetting maps one harm category to a block threshold.
type safetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

// generateRequest is the full request body for generateContent.
type generateRequest struct {
	Contents         []Content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
	SafetySettings   []safetySetting  `json:"safetySettings"`
}

// generateResponse models the nested optional response shape. Every
// level can legitimately be absent; absence degrades to the fallback
// text, never to a panic.
type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content      *candidateContent `json:"content,omitempty"`
	FinishReason string            `json:"finishReason,omitempty"`
}

type candidateContent struct {
	Parts []Part `json:"parts,omitempty"`
}

// text extracts the first candidate's first text part, or "" when any
// level of the chain is missing.
func (r *generateResponse) text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	c := r.Candidates[0]
	if c.Content == nil || len(c.Content.Parts) == 0 {
		return ""
	}
	return c.Content.Parts[0].Text
}

// safetyBlocked reports whether the first candidate was cut off by the
// provider's content-safety filter.
func (r *generateResponse) safetyBlocked() bool {
	return len(r.Candidates) > 0 && r.Candidates[0].FinishReason == "SAFETY"
}
