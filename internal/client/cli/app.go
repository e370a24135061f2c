// Package cli implements the interactive three-step registration wizard:
// account details, company details, then review and submit. Wizard state is
// persisted locally after every change, so quitting mid-way loses nothing.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/XVDel0Saint/fameconnect/internal/client/api"
	"github.com/XVDel0Saint/fameconnect/internal/client/client"
	"github.com/XVDel0Saint/fameconnect/internal/client/config"
	"github.com/XVDel0Saint/fameconnect/internal/client/models"
	"github.com/XVDel0Saint/fameconnect/internal/client/registration"

	_ "modernc.org/sqlite"
)

// registrationAPI is the slice of the HTTP client the wizard needs.
// The real api.Client satisfies it; tests provide a stub.
type registrationAPI interface {
	Register(ctx context.Context, state models.FormState) (*api.RegisterResult, error)
	Countries(ctx context.Context) ([]api.Country, error)
}

type App struct {
	config *config.Config
	store  *registration.Store
	api    registrationAPI
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	repos, err := client.InitDatabase(ctx, c.DatabaseFile)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	store, err := registration.NewStore(ctx, repos.FormState)
	if err != nil {
		return nil, err
	}

	return &App{
		config: c,
		store:  store,
		api:    api.NewClient(c.ServerEndpointAddr, c.RequestTimeout),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

// Run drives the wizard until the registration is submitted or the user
// quits. The current step is read back from the store on every iteration, so
// a restored session resumes exactly where it stopped.
func (a *App) Run(ctx context.Context) {

	fmt.Fprintln(a.out, "FameConnect exhibitor/buyer registration")

	if a.store.Rehydrated() {
		fmt.Fprintln(a.out, "Restored your previous session.")
		if a.store.State().UI.CurrentStep >= registration.LastStep-1 {
			fmt.Fprintln(a.out, "Note: brochure attachments are not kept between runs; re-select the file if you want one.")
		}
	}

	for {
		var err error
		var done bool

		switch a.store.State().UI.CurrentStep {
		case 1:
			err = a.stepAccount(ctx)
		case 2:
			err = a.stepCompany(ctx)
		default:
			done, err = a.stepReview(ctx)
		}

		if err != nil {
			fmt.Fprintf(a.out, "error: %v\n", err)
			return
		}
		if done {
			return
		}
	}
}
