package main

import (
	"context"
	"errors"

	"github.com/urfave/cli/v2"

	"github.com/dashwallet/walletd/internal/core/domain"
)

var balance = cli.Command{
	Name:  "balance",
	Usage: "show the aggregate balance of an account or a whole wallet",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "account",
			Usage: "id of the account",
		},
		&cli.StringFlag{
			Name:  "wallet",
			Usage: "id of the wallet",
		},
	},
	Action: balanceAction,
}

func balanceAction(ctx *cli.Context) error {
	svc, cleanup, err := getService(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	var bal *domain.Balance
	switch {
	case ctx.IsSet("account"):
		bal, err = svc.AccountBalance(context.Background(), ctx.String("account"))
	case ctx.IsSet("wallet"):
		bal, err = svc.WalletBalance(context.Background(), ctx.String("wallet"))
	default:
		return errors.New("either --account or --wallet must be given")
	}
	if err != nil {
		return err
	}

	printRespJSON(map[string]interface{}{
		"confirmed":       formatDash(bal.Confirmed),
		"pending":         formatDash(bal.Pending),
		"instant_locked":  formatDash(bal.InstantLocked),
		"mempool":         formatDash(bal.Mempool),
		"mempool_instant": formatDash(bal.MempoolInstant),
		"total":           formatDash(bal.Total),
		"available":       formatDash(bal.Available()),
		"updated_at":      bal.UpdatedAt,
	})
	return nil
}
