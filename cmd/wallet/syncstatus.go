package main

import (
	"context"

	"github.com/urfave/cli/v2"
)

var syncstatus = cli.Command{
	Name:  "syncstatus",
	Usage: "show the sync state of a wallet",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "wallet",
			Usage:    "id of the wallet",
			Required: true,
		},
	},
	Action: syncStatusAction,
}

func syncStatusAction(ctx *cli.Context) error {
	svc, cleanup, err := getService(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	state, err := svc.SyncStatus(context.Background(), ctx.String("wallet"))
	if err != nil {
		return err
	}

	printRespJSON(map[string]interface{}{
		"wallet_id":      state.WalletID,
		"status":         state.Status.String(),
		"current_height": state.CurrentHeight,
		"target_height":  state.TargetHeight,
		"progress":       state.Progress,
		"last_error":     state.LastError,
	})
	return nil
}
