// Package cli implements the interactive fairhub client: a small REPL for
// registering, submitting projects, browsing fairs, voting, and commenting.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/dmitrijs2005/fairhub/internal/client/api"
	"github.com/dmitrijs2005/fairhub/internal/client/config"
)

type App struct {
	config   *config.Config
	client   *api.Client
	userName string
	reader   *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	return &App{
		config: c,
		client: api.NewClient(c),
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.client.LoggedIn()
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}
