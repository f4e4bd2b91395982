package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/harunnryd/gippity/internal/aifunc"
	gippityErrors "github.com/harunnryd/gippity/internal/errors"
	"github.com/harunnryd/gippity/internal/task"
	"github.com/harunnryd/gippity/internal/workspace"

	"github.com/spf13/cobra"
)

const backendAgent = "Backend Developer"

var scaffoldCmd = &cobra.Command{
	Use:   "scaffold",
	Short: "Generate backend webserver code and its API schema from a goal",
	RunE: func(cmd *cobra.Command, args []string) error {
		goal, _ := cmd.Flags().GetString("goal")
		goal = strings.TrimSpace(goal)
		if goal == "" {
			return gippityErrors.InvalidInput("--goal is required")
		}

		requester, err := newRequester(cfg, cmd.OutOrStdout())
		if err != nil {
			return err
		}

		ctx, stop := commandContext(cmd.Context())
		defer stop()

		files := workspace.NewFiles(cfg.Paths)
		if err := scaffoldBackend(ctx, requester, files, goal); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Backend code written to %s\n", files.BackendPath)
		fmt.Fprintf(cmd.OutOrStdout(), "API endpoints written to %s\n", files.SchemaPath)
		return nil
	},
}

func scaffoldBackend(ctx context.Context, r *task.Requester, files *workspace.Files, goal string) error {
	template, err := files.ReadCodeTemplate()
	if err != nil {
		return err
	}

	input := fmt.Sprintf("PROJECT_DESCRIPTION: %s\nCODE_TEMPLATE: %s", goal, template)
	code := r.RequestTask(ctx, input, backendAgent, "Writing backend code", aifunc.PrintBackendWebserverCode)
	if err := files.SaveBackendCode(code); err != nil {
		return err
	}

	endpoints := r.RequestTask(ctx, code, backendAgent, "Collecting REST API endpoints", aifunc.PrintRESTAPIEndpoints)
	return files.SaveAPIEndpoints(endpoints)
}

func init() {
	rootCmd.AddCommand(scaffoldCmd)
	scaffoldCmd.Flags().StringP("goal", "g", "", "Project goal the backend must implement")
}
