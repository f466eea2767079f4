// Package guard implements the policy classifier that gates which chat
// messages are forwarded to the upstream model. Classification is a
// pure function over sanitized text: an ordered injection rule set is
// checked first, then an off-topic rule set, and the first matching
// rule wins. A message matching rules in both sets is always an
// injection attempt.
package guard

import "regexp"

// Outcome is the classifier's verdict for a single message.
type Outcome int

const (
	// Allowed means the message may be forwarded upstream.
	Allowed Outcome = iota
	// InjectionAttempt means the message tries to override the
	// assistant's role or extract its configuration.
	InjectionAttempt
	// OffTopic means the message requests content outside the
	// migration-analysis domain.
	OffTopic
)

// String implements fmt.Stringer for log output.
func (o Outcome) String() string {
	switch o {
	case InjectionAttempt:
		return "injection_attempt"
	case OffTopic:
		return "off_topic"
	default:
		return "allowed"
	}
}

// injectionRules match prompt injection attempts: instruction
// overrides, role hijacks, prompt exfiltration, delimiter markers,
// and named jailbreak techniques. Order matters only for which rule
// reports first; any match yields the same outcome.
var injectionRules = []*regexp.Regexp{
	regexp.MustCompile(`(?i)ignore\s+(all\s+)?(previous|prior|above|earlier)\s+(instructions?|prompts?|rules?|context)`),
	regexp.MustCompile(`(?i)forget\s+(all\s+)?(previous|prior|above|earlier|your)\s+(instructions?|prompts?|rules?|context|training)`),
	regexp.MustCompile(`(?i)disregard\s+(all\s+)?(previous|prior|above|earlier)\s+(instructions?|prompts?|rules?)`),
	regexp.MustCompile(`(?i)override\s+(all\s+)?(previous|prior|above|earlier|system)\s+(instructions?|prompts?|rules?)`),
	regexp.MustCompile(`(?i)new\s+(system\s+)?(instructions?|prompts?|rules?|persona|role)`),
	regexp.MustCompile(`(?i)you\s+are\s+now\s+(a|an|the)`),
	regexp.MustCompile(`(?i)act\s+(as|like)\s+(a|an|the|if)`),
	regexp.MustCompile(`(?i)pretend\s+(to\s+be|you('re| are))`),
	regexp.MustCompile(`(?i)roleplay\s+as`),
	regexp.MustCompile(`(?i)simulate\s+(being|a)`),
	regexp.MustCompile(`(?i)from\s+now\s+on\s+(you|your)`),
	regexp.MustCompile(`(?i)switch\s+(to|into)\s+(a\s+)?(new\s+)?(mode|role|persona)`),
	regexp.MustCompile(`(?i)enter\s+(a\s+)?(new\s+)?(mode|role|persona)`),
	regexp.MustCompile(`(?i)reveal\s+(your|the|system)\s+(prompt|instructions?|rules?)`),
	regexp.MustCompile(`(?i)show\s+(me\s+)?(your|the|system)\s+(prompt|instructions?|rules?)`),
	regexp.MustCompile(`(?i)what\s+(are|is)\s+(your|the)\s+(system\s+)?(prompt|instructions?|rules?)`),
	regexp.MustCompile(`(?i)output\s+(your|the)\s+(system\s+)?(prompt|instructions?)`),
	regexp.MustCompile(`(?i)print\s+(your|the)\s+(system\s+)?(prompt|instructions?)`),
	regexp.MustCompile(`(?i)repeat\s+(your|the)\s+(system\s+)?(prompt|instructions?|rules?)`),
	regexp.MustCompile(`(?i)tell\s+me\s+(your|the)\s+(system\s+)?(prompt|instructions?|rules?)`),
	regexp.MustCompile(`(?i)\[system\]`),
	regexp.MustCompile(`(?i)\[instruction\]`),
	regexp.MustCompile(`(?i)\[admin\]`),
	regexp.MustCompile(`(?i)\[override\]`),
	regexp.MustCompile(`(?i)<\s*system\s*>`),
	regexp.MustCompile("(?i)```" + `\s*(system|instruction|prompt)`),
	regexp.MustCompile(`(?i)base64|rot13|hex\s*encode`),
	regexp.MustCompile(`(?i)jailbreak`),
	regexp.MustCompile(`(?i)dan\s*mode`),
	regexp.MustCompile(`(?i)developer\s*mode`),
	regexp.MustCompile(`(?i)sudo\s+mode`),
}

// encodedRun flags long unbroken alphanumeric-plus-+/= sequences,
// the footprint of a base64 payload smuggled past the keyword rules.
var encodedRun = regexp.MustCompile(`[a-zA-Z0-9+/=]{50,}`)

// offTopicRules match requests outside the migration-analysis domain.
var offTopicRules = []*regexp.Regexp{
	regexp.MustCompile(`(?i)write\s+(me\s+)?(a|an|some)?\s*(code|script|program|malware|virus)`),
	regexp.MustCompile(`(?i)how\s+to\s+(hack|exploit|attack|breach)`),
	regexp.MustCompile(`(?i)create\s+(a\s+)?(bomb|weapon|exploit)`),
	regexp.MustCompile(`(?i)illegal|criminal\s+activity`),
}

// Classify returns the verdict for a sanitized message. Injection
// rules (including the encoded-run heuristic) take priority over
// off-topic rules; only a message matching neither set is Allowed.
func Classify(sanitized string) Outcome {
	for _, rule := range injectionRules {
		if rule.MatchString(sanitized) {
			return InjectionAttempt
		}
	}
	if encodedRun.MatchString(sanitized) {
		return InjectionAttempt
	}

	for _, rule := range offTopicRules {
		if rule.MatchString(sanitized) {
			return OffTopic
		}
	}

	return Allowed
}
