package config

const (
	defaultAPIListen = ":8080"

	defaultGeminiModel   = "gemini-2.5-flash"
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"

	defaultClientAPITarget = "http://localhost:8080"
)

// NewDefaultConfig returns a Config with sane defaults for all fields.
// This is the single source of truth for default values. The API key
// has no default; it must come from the environment, the config file,
// or a flag.
func NewDefaultConfig() *Config {
	return &Config{
		Version: CurrentV,
		API: APIConfig{
			Listen: defaultAPIListen,
		},
		Gemini: GeminiConfig{
			Model:   defaultGeminiModel,
			BaseURL: defaultGeminiBaseURL,
		},
		Client: ClientConfig{
			APITarget: defaultClientAPITarget,
		},
	}
}
