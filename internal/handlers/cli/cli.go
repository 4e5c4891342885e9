package cli

import (
	"context"
	"os"

	"github.com/poseidoncompute/poseidonstore/internal/txstore"

	"github.com/urfave/cli/v3"
)

// newApp builds the poseidon command tree on top of svc.
func newApp(svc txstore.Service) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "poseidon",
		Description:           "Command-line interface for the local PoseidonStore wallet repository.",
		Usage:                 "poseidon [command] [flags]",
		Commands: []*cli.Command{
			addTransactionCommand(svc),
			listTransactionsCommand(svc),
			pathsCommand(svc),
		},
	}
}

// Run executes the poseidon CLI application.
//
// It registers all available commands:
//
//   - `add-tx`: Records transactions on an account.
//   - `list-txs`: Prints every stored transaction.
//   - `paths`: Prints the resolved repository layout.
func Run(ctx context.Context, svc txstore.Service) error {
	return newApp(svc).Run(ctx, os.Args)
}
