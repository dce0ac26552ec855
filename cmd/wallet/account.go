package main

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/dashwallet/walletd/config"
)

var createaccount = cli.Command{
	Name:  "createaccount",
	Usage: "append a new account to a wallet",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "wallet",
			Usage:    "id of the wallet",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "label",
			Usage: "display label of the account",
		},
		&cli.StringFlag{
			Name:     "xpub",
			Usage:    "account level extended public key",
			Required: true,
		},
		&cli.UintFlag{
			Name:  "gap_limit",
			Usage: "gap limit for address derivation",
			Value: uint(config.GetInt(config.GapLimitKey)),
		},
	},
	Action: createAccountAction,
}

var listaccounts = cli.Command{
	Name:  "listaccounts",
	Usage: "list the accounts of a wallet ordered by index",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "wallet",
			Usage:    "id of the wallet",
			Required: true,
		},
	},
	Action: listAccountsAction,
}

func createAccountAction(ctx *cli.Context) error {
	svc, cleanup, err := getService(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	account, err := svc.CreateAccount(
		context.Background(),
		ctx.String("wallet"),
		ctx.String("label"),
		ctx.String("xpub"),
		uint32(ctx.Uint("gap_limit")),
	)
	if err != nil {
		return err
	}

	printRespJSON(account)
	return nil
}

func listAccountsAction(ctx *cli.Context) error {
	svc, cleanup, err := getService(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	accounts, err := svc.ListAccounts(context.Background(), ctx.String("wallet"))
	if err != nil {
		return err
	}

	printRespJSON(accounts)
	return nil
}
