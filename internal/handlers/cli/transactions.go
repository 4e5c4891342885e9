package cli

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strconv"

	"github.com/poseidoncompute/poseidonstore/internal/pkg/types"
	"github.com/poseidoncompute/poseidonstore/internal/txstore"
	"github.com/poseidoncompute/poseidonstore/internal/walletaccount"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
)

// addTransactionCommand returns a CLI command that records one or more
// transactions on an account. Repeated signatures are processed once.
//
// Usage example:
//
//	poseidon add-tx --account 7EcD... --signature 5VER... --signature 3Asd... --create
func addTransactionCommand(svc txstore.Service) *cli.Command {
	return &cli.Command{
		Name:        "add-tx",
		Description: "Fetch transactions by signature and record them on an account.",
		Usage:       "Records transactions on an account. Must provide the account and at least one signature.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "account",
				Usage:    "Public key of the account the transactions belong to",
				Required: true,
			},
			&cli.StringSliceFlag{
				Name:     "signature",
				Usage:    "Transaction signature to record (repeatable)",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "create",
				Usage: "Create the account record when it does not exist",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			var (
				account    = c.String("account")
				signatures = types.NewSet(c.StringSlice("signature")...)
				policy     = txstore.ErrIfNone
			)

			if c.Bool("create") {
				policy = txstore.CreateIfNone
			}

			w := c.Root().Writer
			for signature := range signatures.ToIter() {
				outcome, err := svc.AddTransaction(ctx, policy, account, signature)
				if err != nil {
					return fmt.Errorf("adding %s to %s: %w", signature, account, err)
				}

				fmt.Fprintf(w, "%s\t%s\n", signature, outcome)
			}

			return nil
		},
	}
}

// listTransactionsCommand returns a CLI command that prints every stored
// transaction as a table ordered by slot.
//
// Usage example:
//
//	poseidon list-txs
func listTransactionsCommand(svc txstore.Service) *cli.Command {
	return &cli.Command{
		Name:        "list-txs",
		Description: "List every transaction recorded in the repository.",
		Usage:       "Prints all stored transactions ordered by slot.",
		Action: func(ctx context.Context, c *cli.Command) error {
			txs, err := svc.ListTransactions(ctx)
			if err != nil {
				return err
			}

			slices.SortFunc(txs, func(a, b walletaccount.Transaction) int {
				return cmp.Or(
					cmp.Compare(a.Slot, b.Slot),
					cmp.Compare(a.Signature, b.Signature),
				)
			})

			table := tablewriter.NewWriter(c.Root().Writer)
			table.SetHeader([]string{"Signature", "Slot", "Fee", "Status"})
			table.SetAutoWrapText(false)
			for _, tx := range txs {
				table.Append([]string{
					tx.Signature,
					strconv.FormatUint(tx.Slot, 10),
					strconv.FormatUint(tx.Fee, 10),
					status(tx),
				})
			}
			table.Render()

			return nil
		},
	}
}

// status renders the execution result of tx.
func status(tx walletaccount.Transaction) string {
	if tx.Succeeded() {
		return "success"
	}
	return "failed: " + tx.Err
}
