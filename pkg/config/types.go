package config

import "strconv"

// Config represents the persistent occ configuration stored as config.toml
// in the .occ/ directory. The TOML layout uses sections for logical grouping.
type Config struct {
	Version int          `toml:"version"`
	API     APIConfig    `toml:"api"`
	Gemini  GeminiConfig `toml:"gemini"`
	Client  ClientConfig `toml:"client"`
	Log     LogConfig    `toml:"log"`
}

// APIConfig holds API server settings.
type APIConfig struct {
	Listen string `toml:"listen,omitempty"`
}

// GeminiConfig holds upstream provider settings. The API key is usually
// supplied via OCC_GEMINI_API_KEY rather than the file.
type GeminiConfig struct {
	APIKey  string `toml:"api_key,omitempty"`
	Model   string `toml:"model,omitempty"`
	BaseURL string `toml:"base_url,omitempty"`
}

// ClientConfig holds settings for CLI commands that connect to a running
// API server (e.g. occ chat). Values are full URLs (scheme + host + port).
type ClientConfig struct {
	APITarget string `toml:"api_target,omitempty"`
}

// LogConfig holds logging output settings.
type LogConfig struct {
	JSON bool   `toml:"json,omitempty"`
	File string `toml:"file,omitempty"`
}

// configKeyInfo maps a user-facing dotted key name to a getter and setter on *Config.
type configKeyInfo struct {
	get func(c *Config) string
	set func(c *Config, v string) error
}

// configKeys is the authoritative map of all supported config keys.
// Keys use dotted notation matching the TOML section structure.
var configKeys = map[string]configKeyInfo{
	"api.listen": {
		get: func(c *Config) string { return c.API.Listen },
		set: func(c *Config, v string) error { c.API.Listen = v; return nil },
	},
	"gemini.api_key": {
		get: func(c *Config) string { return c.Gemini.APIKey },
		set: func(c *Config, v string) error { c.Gemini.APIKey = v; return nil },
	},
	"gemini.model": {
		get: func(c *Config) string { return c.Gemini.Model },
		set: func(c *Config, v string) error { c.Gemini.Model = v; return nil },
	},
	"gemini.base_url": {
		get: func(c *Config) string { return c.Gemini.BaseURL },
		set: func(c *Config, v string) error { c.Gemini.BaseURL = v; return nil },
	},
	"client.api_target": {
		get: func(c *Config) string { return c.Client.APITarget },
		set: func(c *Config, v string) error { c.Client.APITarget = v; return nil },
	},
	"log.json": {
		get: func(c *Config) string { return strconv.FormatBool(c.Log.JSON) },
		set: func(c *Config, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return err
			}
			c.Log.JSON = b
			return nil
		},
	},
	"log.file": {
		get: func(c *Config) string { return c.Log.File },
		set: func(c *Config, v string) error { c.Log.File = v; return nil },
	},
}
