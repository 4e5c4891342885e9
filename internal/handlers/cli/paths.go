package cli

import (
	"context"
	"fmt"

	"github.com/poseidoncompute/poseidonstore/internal/txstore"

	"github.com/urfave/cli/v3"
)

// pathsCommand returns a CLI command that prints where the repository lives.
//
// Usage example:
//
//	poseidon paths
func pathsCommand(svc txstore.Service) *cli.Command {
	return &cli.Command{
		Name:        "paths",
		Description: "Print the resolved repository layout.",
		Usage:       "Prints the identifier and the directories used by the repository.",
		Action: func(_ context.Context, c *cli.Command) error {
			layout := svc.Layout()

			w := c.Root().Writer
			fmt.Fprintf(w, "identifier\t%s\n", layout.Identifier)
			fmt.Fprintf(w, "repository\t%s\n", layout.BasePath)
			fmt.Fprintf(w, "store\t%s\n", layout.StorePath)
			fmt.Fprintf(w, "logs\t%s\n", layout.LogsPath)
			return nil
		},
	}
}
