package main

import (
	"fmt"
	"io"
	"os"

	"github.com/harunnryd/gippity/internal/config"
	"github.com/harunnryd/gippity/internal/console"
	"github.com/harunnryd/gippity/internal/llm/openai"
	"github.com/harunnryd/gippity/internal/logger"
	"github.com/harunnryd/gippity/internal/task"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "gippity",
	Short: "Gippity webserver agent",
	Long:  `Gippity turns a plain-language webserver request into a project goal, a scope and backend code.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cmd)
		if err != nil {
			return err
		}

		logger.Setup(cfg.Log.Level)
		return nil
	},
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRequester validates the LLM settings and builds a Requester reporting to out.
func newRequester(c *config.Config, out io.Writer) (*task.Requester, error) {
	if err := c.ValidateLLM(); err != nil {
		return nil, err
	}

	client, err := openai.NewFromConfig(c.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM client: %w", err)
	}

	return task.NewRequester(client, task.WithReporter(console.NewPrinter(out))), nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.gippity/config.yaml)")
	rootCmd.PersistentFlags().String("log.level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
}
