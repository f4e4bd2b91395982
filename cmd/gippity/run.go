package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/harunnryd/gippity/internal/aifunc"
	"github.com/harunnryd/gippity/internal/console"
	gippityErrors "github.com/harunnryd/gippity/internal/errors"
	"github.com/harunnryd/gippity/internal/task"

	"github.com/spf13/cobra"
)

const (
	managingAgent   = "Managing Agent"
	userRequestText = "What webserver are we building today?"
)

// projectBrief is what the managing agent learns from one request.
type projectBrief struct {
	Goal  string
	Scope aifunc.ProjectScope
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Turn a webserver request into a goal and a project scope",
	RunE: func(cmd *cobra.Command, args []string) error {
		request, _ := cmd.Flags().GetString("request")
		request = strings.TrimSpace(request)
		if request == "" {
			var err error
			request, err = console.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout()).Ask(userRequestText)
			if err != nil {
				return err
			}
		}
		if request == "" {
			return gippityErrors.InvalidInput("webserver request is empty")
		}

		requester, err := newRequester(cfg, cmd.OutOrStdout())
		if err != nil {
			return err
		}

		ctx, stop := commandContext(cmd.Context())
		defer stop()

		brief := defineProject(ctx, requester, request)
		printBrief(cmd.OutOrStdout(), brief)
		return nil
	},
}

func defineProject(ctx context.Context, r *task.Requester, request string) projectBrief {
	goal := r.RequestTask(ctx, request, managingAgent, "Defining user requirements", aifunc.ConvertUserInputToGoal)
	goal = strings.TrimSpace(goal)

	scope := task.RequestDecoded[aifunc.ProjectScope](ctx, r, goal, managingAgent, "Defining project scope", aifunc.PrintProjectScope)

	return projectBrief{Goal: goal, Scope: scope}
}

func printBrief(out io.Writer, brief projectBrief) {
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Project goal: %s\n", brief.Goal)
	fmt.Fprintf(out, "CRUD required: %t\n", brief.Scope.IsCRUDRequired)
	fmt.Fprintf(out, "User login and logout: %t\n", brief.Scope.IsUserLoginAndLogout)
	fmt.Fprintf(out, "External URLs required: %t\n", brief.Scope.IsExternalURLsRequired)
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringP("request", "r", "", "Webserver request (prompted for when empty)")
}
