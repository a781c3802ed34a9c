// Package config provides configuration loading and management for stackadvisor.
package config

// Config is the root configuration.
type Config struct {
	LLM    LLMConfig    `json:"llm"    mapstructure:"llm"`
	Memory MemoryConfig `json:"memory" mapstructure:"memory"`
}

// LLMConfig describes the model backend.
type LLMConfig struct {
	Provider    string  `json:"provider"              mapstructure:"provider"`
	Model       string  `json:"model"                 mapstructure:"model"`
	APIKey      string  `json:"api_key,omitempty"     mapstructure:"api_key"`
	APIKeyEnv   string  `json:"api_key_env,omitempty" mapstructure:"api_key_env"`
	BaseURL     string  `json:"base_url,omitempty"    mapstructure:"base_url"`
	Timeout     int     `json:"timeout,omitempty"     mapstructure:"timeout"`
	Temperature float64 `json:"temperature,omitempty" mapstructure:"temperature"`
}

// MemoryConfig tunes the conversation window.
type MemoryConfig struct {
	WindowSize int `json:"window_size" mapstructure:"window_size"`
}

// Default returns the built-in configuration: Gemini flash with the
// credential read from GOOGLE_API_KEY, remembering the last 5 turns.
func Default() Config {
	return Config{
		LLM: LLMConfig{
			Provider:    "gemini",
			Model:       "gemini-2.0-flash",
			APIKeyEnv:   "GOOGLE_API_KEY",
			Temperature: 0.7,
		},
		Memory: MemoryConfig{WindowSize: 5},
	}
}

// Normalize fills unset fields from the defaults.
func (c Config) Normalize() Config {
	def := Default()
	if c.LLM.Provider == "" {
		c.LLM.Provider = def.LLM.Provider
	}
	if c.LLM.Model == "" {
		c.LLM.Model = def.LLM.Model
	}
	if c.LLM.Temperature <= 0 {
		c.LLM.Temperature = def.LLM.Temperature
	}
	if c.Memory.WindowSize <= 0 {
		c.Memory.WindowSize = def.Memory.WindowSize
	}
	return c
}
