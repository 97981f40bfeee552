package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
)

func (a *App) getStatus() string {
	s := ""
	if a.userName != "" {
		s = fmt.Sprintf("(%s)", a.userName)
	}
	return s
}

// Logout drops the client's token pair and clears the prompt user name.
func (a *App) Logout(ctx context.Context) error {
	a.client.Logout()
	a.userName = ""
	fmt.Println("Logged out.")
	return nil
}

func (a *App) Root(ctx context.Context) {
	log.Println("Welcome to fairhub CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
