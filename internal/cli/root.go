package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harlamovads/Graph-description-training/internal/api"
	"github.com/harlamovads/Graph-description-training/internal/credstore"
	"github.com/harlamovads/Graph-description-training/internal/domain"
	"github.com/harlamovads/Graph-description-training/internal/session"
)

// App holds the wired dependencies CLI commands run against.
type App struct {
	API     *api.Client
	Session *session.Manager
	Store   credstore.Store

	// IsInteractive reports whether stdin is a terminal; interactive
	// forms and the attempt runner require it.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "graphtrain" command and registers
// all subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "graphtrain",
		Short:         "Terminal client for the writing-training platform",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		newLoginCmd(app),
		newRegisterCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newStudentsCmd(app),
		newInviteCmd(app),
		newTaskCmd(app),
		newSubmissionCmd(app),
		newExerciseCmd(app),
	)

	return root
}

// requireUser bootstraps the session from the stored token and gates on
// the required role (empty means any authenticated user). Gate failures
// come back as actionable user-facing errors.
func requireUser(ctx context.Context, app *App, role domain.Role) (*domain.User, error) {
	if _, err := app.Session.Bootstrap(ctx); err != nil {
		return nil, err
	}
	user, err := app.Session.Require(role)
	if err != nil {
		if errors.Is(err, session.ErrForbidden) {
			return nil, fmt.Errorf("%w (requires the %s role)", err, role)
		}
		snap := app.Session.Snapshot()
		if snap.Err != "" {
			return nil, fmt.Errorf("%s; run `graphtrain login`", snap.Err)
		}
		return nil, fmt.Errorf("not logged in; run `graphtrain login` first")
	}
	return user, nil
}
