package config

import (
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server struct {
		Port         int           `yaml:"port" default:"8080"`
		Host         string        `yaml:"host" default:"0.0.0.0"`
		ReadTimeout  time.Duration `yaml:"read_timeout" default:"30s"`
		WriteTimeout time.Duration `yaml:"write_timeout" default:"30s"`
		IdleTimeout  time.Duration `yaml:"idle_timeout" default:"60s"`

		// MaxBodyBytes caps POST request bodies. Resume text alone is
		// capped at 20k characters, so 1MB leaves ample headroom.
		MaxBodyBytes int64 `yaml:"max_body_bytes" default:"1048576"`
	} `yaml:"server"`

	AI struct {
		// Per-capability provider order. The rule-based engine is always
		// appended as the terminal entry and is not listed here.
		Chains struct {
			MatchAnalysis      []string `yaml:"match_analysis"`
			CoverLetterDraft   []string `yaml:"cover_letter_draft"`
			QuestionGeneration []string `yaml:"question_generation"`
			AnswerEvaluation   []string `yaml:"answer_evaluation"`
		} `yaml:"chains"`

		Claude struct {
			APIKey      string  `yaml:"api_key"`
			Model       string  `yaml:"model" default:"claude-3-haiku-20240307"`
			MaxTokens   int     `yaml:"max_tokens" default:"4096"`
			Temperature float32 `yaml:"temperature" default:"0.2"`
		} `yaml:"claude"`

		Gemini struct {
			APIKey      string  `yaml:"api_key"`
			Model       string  `yaml:"model" default:"gemini-2.0-flash"`
			MaxTokens   int     `yaml:"max_tokens" default:"4096"`
			Temperature float32 `yaml:"temperature" default:"0.2"`
		} `yaml:"gemini"`

		// Timeout bounds every remote provider call; the orchestrator
		// advances to the next provider when it elapses.
		Timeout time.Duration `yaml:"timeout" default:"30s"`

		// Guard settings for remote providers.
		RateLimit   int `yaml:"rate_limit" default:"60"` // requests per minute per provider
		MaxFailures int `yaml:"max_failures" default:"5"`
	} `yaml:"ai"`

	Quota struct {
		DailyLimit int    `yaml:"daily_limit" default:"5"`
		Store      string `yaml:"store" default:"memory"` // memory or redis
	} `yaml:"quota"`

	Redis struct {
		URL      string        `yaml:"url" default:"redis://localhost:6379"`
		Password string        `yaml:"password"`
		DB       int           `yaml:"db" default:"0"`
		Timeout  time.Duration `yaml:"timeout" default:"5s"`
	} `yaml:"redis"`

	Logging struct {
		Level  string `yaml:"level" default:"info"`
		Format string `yaml:"format" default:"json"`
		Output string `yaml:"output" default:"stdout"`

		Adapters []struct {
			Name    string                 `yaml:"name"`
			Type    string                 `yaml:"type"`
			Enabled bool                   `yaml:"enabled"`
			Options map[string]interface{} `yaml:"options"`
		} `yaml:"adapters"`
	} `yaml:"logging"`
}

// expandEnvVars expands environment variables in a string using ${VAR} or $VAR syntax
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	s = re.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})

	re2 := regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
	s = re2.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[1:]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})

	return s
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load .env file if it exists (ignore errors if file doesn't exist)
	_ = godotenv.Load()

	config := &Config{}

	// Set defaults
	config.Server.Port = 8080
	config.Server.Host = "0.0.0.0"
	config.Server.ReadTimeout = 30 * time.Second
	config.Server.WriteTimeout = 30 * time.Second
	config.Server.IdleTimeout = 60 * time.Second
	config.Server.MaxBodyBytes = 1 << 20

	// Claude leads for analysis; Gemini leads for generation-style tasks.
	config.AI.Chains.MatchAnalysis = []string{"claude", "gemini"}
	config.AI.Chains.CoverLetterDraft = []string{"gemini", "claude"}
	config.AI.Chains.QuestionGeneration = []string{"gemini", "claude"}
	config.AI.Chains.AnswerEvaluation = []string{"gemini", "claude"}

	config.AI.Claude.Model = "claude-3-haiku-20240307"
	config.AI.Claude.MaxTokens = 4096
	config.AI.Claude.Temperature = 0.2

	config.AI.Gemini.Model = "gemini-2.0-flash"
	config.AI.Gemini.MaxTokens = 4096
	config.AI.Gemini.Temperature = 0.2

	config.AI.Timeout = 30 * time.Second
	config.AI.RateLimit = 60
	config.AI.MaxFailures = 5

	config.Quota.DailyLimit = 5
	config.Quota.Store = "memory"

	config.Redis.URL = "redis://localhost:6379"
	config.Redis.DB = 0
	config.Redis.Timeout = 5 * time.Second

	config.Logging.Level = "info"
	config.Logging.Format = "json"
	config.Logging.Output = "stdout"

	// Load from YAML file if it exists
	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			yamlContent := expandEnvVars(string(data))

			if err := yaml.Unmarshal([]byte(yamlContent), config); err != nil {
				return nil, err
			}
		}
	}

	// Override with environment variables
	config.loadFromEnv()

	return config, nil
}

// loadFromEnv loads configuration from environment variables
func (c *Config) loadFromEnv() {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}

	if host := os.Getenv("HOST"); host != "" {
		c.Server.Host = host
	}

	if apiKey := os.Getenv("CLAUDE_API_KEY"); apiKey != "" {
		c.AI.Claude.APIKey = apiKey
	}

	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		c.AI.Gemini.APIKey = apiKey
	}

	if limit := os.Getenv("AI_DAILY_LIMIT"); limit != "" {
		if l, err := strconv.Atoi(limit); err == nil && l > 0 {
			c.Quota.DailyLimit = l
		}
	}

	if store := os.Getenv("QUOTA_STORE"); store != "" {
		c.Quota.Store = store
	}

	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		c.Redis.URL = redisURL
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

// ChainFor returns the configured remote provider order for a capability key.
// Unknown keys fall back to the analysis chain.
func (c *Config) ChainFor(capability string) []string {
	switch capability {
	case "match_analysis":
		return c.AI.Chains.MatchAnalysis
	case "cover_letter_draft":
		return c.AI.Chains.CoverLetterDraft
	case "question_generation":
		return c.AI.Chains.QuestionGeneration
	case "answer_evaluation":
		return c.AI.Chains.AnswerEvaluation
	default:
		return c.AI.Chains.MatchAnalysis
	}
}
