package main

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/harunnryd/gippity/internal/console"
	"github.com/harunnryd/gippity/internal/probe"

	"github.com/spf13/cobra"
)

const testerAgent = "Backend Tester"

var checkCmd = &cobra.Command{
	Use:   "check <url>",
	Short: "Report the HTTP status code a webserver returns for a URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		timeout, _ := cmd.Flags().GetDuration("timeout")

		ctx, stop := commandContext(cmd.Context())
		defer stop()

		return checkEndpoint(ctx, cmd.OutOrStdout(), &http.Client{Timeout: timeout}, args[0])
	},
}

func checkEndpoint(ctx context.Context, out io.Writer, client *http.Client, url string) error {
	printer := console.NewPrinter(out)

	code, err := probe.StatusCode(ctx, client, url)
	if err != nil {
		printer.PrintAgentMessage(console.Issue, testerAgent, fmt.Sprintf("Failed to reach %s", url))
		return err
	}

	printer.PrintAgentMessage(console.UnitTesting, testerAgent, fmt.Sprintf("%s responded with status %d", url, code))
	return nil
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().Duration("timeout", probe.DefaultTimeout, "request timeout")
}
