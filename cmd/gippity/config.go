package main

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/harunnryd/gippity/internal/config"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

//go:embed templates/config.yaml
var embeddedDefaultConfig []byte

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Manage Gippity configuration file.`,
}

var configViewCmd = &cobra.Command{
	Use:   "view",
	Short: "Dump fully resolved configuration",
	Long:  `Display current configuration with all defaults applied and environment variables resolved.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		loadedCfg, err := loadConfigForCommand(cmd)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return writeRedactedConfig(cmd.OutOrStdout(), loadedCfg)
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize default configuration",
	Long:  `Create a default configuration file at $HOME/.gippity/config.yaml if it doesn't exist.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := config.DefaultConfigPath()
		if configPath == "" {
			return fmt.Errorf("failed to resolve home directory")
		}
		return initConfigFile(cmd.OutOrStdout(), configPath)
	},
}

func initConfigFile(out io.Writer, configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory %s: %w", configDir, err)
	}

	if _, err := os.Stat(configPath); err == nil {
		fmt.Fprintf(out, "Config already exists at %s\n", configPath)
		fmt.Fprintln(out, "Use 'gippity config view' to see current configuration.")
		fmt.Fprintln(out, "To reinitialize, remove the existing config file first.")
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check config file: %w", err)
	}

	defaultConfig := strings.TrimSpace(string(embeddedDefaultConfig)) + "\n"
	if err := atomic.WriteFile(configPath, strings.NewReader(defaultConfig)); err != nil {
		return fmt.Errorf("failed to write config to %s: %w", configPath, err)
	}

	fmt.Fprintf(out, "✓ Initialized config at %s\n", configPath)
	fmt.Fprintln(out, "\nNext steps:")
	fmt.Fprintln(out, "1. Export OPENAI_API_KEY and OPENAI_API_ORG (recommended)")
	fmt.Fprintln(out, "2. Or edit config.yaml to set llm.api_key and llm.org_id directly")
	fmt.Fprintln(out, "3. Run 'gippity config view' to verify your configuration")
	return nil
}

func loadConfigForCommand(cmd *cobra.Command) (*config.Config, error) {
	if cfg != nil {
		return cfg, nil
	}
	return config.Load(cmd)
}

func writeRedactedConfig(out io.Writer, c *config.Config) error {
	if c == nil {
		return fmt.Errorf("config is not initialized; run 'gippity config init' first")
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(redactConfigSecrets(c)); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return enc.Close()
}

func redactConfigSecrets(in *config.Config) *config.Config {
	if in == nil {
		return nil
	}

	out := *in
	out.LLM.APIKey = maskSecret(in.LLM.APIKey)
	out.LLM.OrgID = maskSecret(in.LLM.OrgID)
	return &out
}

func maskSecret(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= 4 {
		return "****"
	}
	return secret[:2] + strings.Repeat("*", len(secret)-4) + secret[len(secret)-2:]
}

func init() {
	configCmd.AddCommand(configViewCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
