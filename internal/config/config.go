package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	gippityErrors "github.com/harunnryd/gippity/internal/errors"
	"github.com/harunnryd/gippity/internal/pathutil"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
)

type Config struct {
	Log   LogConfig   `koanf:"log" yaml:"log"`
	LLM   LLMConfig   `koanf:"llm" yaml:"llm"`
	Paths PathsConfig `koanf:"paths" yaml:"paths"`
}

type LogConfig struct {
	Level string `koanf:"level" yaml:"level"`
}

type LLMConfig struct {
	Model          string  `koanf:"model" yaml:"model"`
	Temperature    float64 `koanf:"temperature" yaml:"temperature"`
	BaseURL        string  `koanf:"base_url" yaml:"base_url"`
	APIKey         string  `koanf:"api_key" yaml:"api_key"`
	OrgID          string  `koanf:"org_id" yaml:"org_id"`
	RequestTimeout string  `koanf:"request_timeout" yaml:"request_timeout"`
}

// PathsConfig names the fixed files the scaffold step reads and overwrites.
type PathsConfig struct {
	CodeTemplate string `koanf:"code_template" yaml:"code_template"`
	BackendCode  string `koanf:"backend_code" yaml:"backend_code"`
	APISchema    string `koanf:"api_schema" yaml:"api_schema"`
}

const (
	EnvPrefix = "GIPPITY_"

	// Standard provider variables, consulted when the config leaves the values empty.
	EnvOpenAIAPIKey = "OPENAI_API_KEY"
	EnvOpenAIOrg    = "OPENAI_API_ORG"

	DefaultLogLevel          = "info"
	DefaultLLMModel          = "gpt-4-turbo"
	DefaultLLMTemperature    = 0.1
	DefaultLLMBaseURL        = "https://api.openai.com/v1"
	DefaultLLMRequestTimeout = ""
	DefaultCodeTemplatePath  = "./webtemplate/src/code_template.rs"
	DefaultBackendCodePath   = "./webtemplate/src/main.rs"
	DefaultAPISchemaPath     = "./schemas/api_schema.json"
)

func Load(cmd *cobra.Command) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		"log.level":           DefaultLogLevel,
		"llm.model":           DefaultLLMModel,
		"llm.temperature":     DefaultLLMTemperature,
		"llm.base_url":        DefaultLLMBaseURL,
		"llm.api_key":         "",
		"llm.org_id":          "",
		"llm.request_timeout": DefaultLLMRequestTimeout,
		"paths.code_template": DefaultCodeTemplatePath,
		"paths.backend_code":  DefaultBackendCodePath,
		"paths.api_schema":    DefaultAPISchemaPath,
	}
	for key, value := range defaults {
		k.Set(key, value)
	}

	configPath := ""
	if cmd != nil {
		if flag := cmd.Flags().Lookup("config"); flag != nil {
			configPath = strings.TrimSpace(flag.Value.String())
		}
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, gippityErrors.WrapWithCategory(err, fmt.Sprintf("load config %s", configPath), gippityErrors.ErrConfig)
		}
	} else if globalPath := DefaultConfigPath(); globalPath != "" {
		if err := k.Load(file.Provider(globalPath), yaml.Parser()); err != nil {
			slog.Debug("Global config not found or invalid", "path", globalPath, "error", err)
		}
	}

	// GIPPITY_LLM_API_KEY -> llm.api_key: the first underscore after the prefix separates the section.
	k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.Replace(key, "_", ".", 1)
	}), nil)

	if cmd != nil {
		k.Load(posflag.Provider(cmd.Flags(), ".", k), nil)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, gippityErrors.WrapWithCategory(err, "decode config", gippityErrors.ErrConfig)
	}

	if cfg.LLM.APIKey == "" {
		cfg.LLM.APIKey = os.Getenv(EnvOpenAIAPIKey)
	}
	if cfg.LLM.OrgID == "" {
		cfg.LLM.OrgID = os.Getenv(EnvOpenAIOrg)
	}

	if err := normalizePathFields(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ValidateLLM reports the configuration an outbound LLM call cannot proceed without.
func (c *Config) ValidateLLM() error {
	if c == nil {
		return gippityErrors.Config("config is not loaded")
	}
	if strings.TrimSpace(c.LLM.APIKey) == "" {
		return gippityErrors.Config(EnvOpenAIAPIKey + " not set")
	}
	if strings.TrimSpace(c.LLM.OrgID) == "" {
		return gippityErrors.Config(EnvOpenAIOrg + " not set")
	}
	if strings.TrimSpace(c.LLM.Model) == "" {
		return gippityErrors.Config("llm.model is empty")
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return gippityErrors.Config(fmt.Sprintf("llm.temperature must be between 0 and 2, got %v", c.LLM.Temperature))
	}
	if _, err := OptionalDuration(c.LLM.RequestTimeout); err != nil {
		return gippityErrors.WrapWithCategory(err, "llm.request_timeout", gippityErrors.ErrConfig)
	}
	return nil
}

// DefaultConfigPath returns $HOME/.gippity/config.yaml, or "" when HOME cannot be resolved.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gippity", "config.yaml")
}

func normalizePathFields(cfg *Config) error {
	for _, field := range []*string{&cfg.Paths.CodeTemplate, &cfg.Paths.BackendCode, &cfg.Paths.APISchema} {
		expanded, err := pathutil.Expand(*field)
		if err != nil {
			return gippityErrors.WrapWithCategory(err, "expand path", gippityErrors.ErrConfig)
		}
		*field = expanded
	}
	return nil
}
