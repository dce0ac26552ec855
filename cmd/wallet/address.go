package main

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/dashwallet/walletd/internal/core/domain"
)

var receiveaddress = cli.Command{
	Name:  "receiveaddress",
	Usage: "show the address to present for receiving funds",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "account",
			Usage:    "id of the account",
			Required: true,
		},
	},
	Action: receiveAddressAction,
}

var newaddress = cli.Command{
	Name:  "newaddress",
	Usage: "make sure an unused address exists on a chain and show it",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "account",
			Usage:    "id of the account",
			Required: true,
		},
		&cli.BoolFlag{
			Name:  "change",
			Usage: "use the internal chain instead of the external one",
		},
	},
	Action: newAddressAction,
}

var listaddresses = cli.Command{
	Name:  "listaddresses",
	Usage: "list the watched addresses of an account",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "account",
			Usage:    "id of the account",
			Required: true,
		},
	},
	Action: listAddressesAction,
}

func receiveAddressAction(ctx *cli.Context) error {
	svc, cleanup, err := getService(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	address, err := svc.ReceiveAddress(context.Background(), ctx.String("account"))
	if err != nil {
		return err
	}

	printRespJSON(address)
	return nil
}

func newAddressAction(ctx *cli.Context) error {
	svc, cleanup, err := getService(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	chain := domain.ExternalChain
	if ctx.Bool("change") {
		chain = domain.InternalChain
	}

	address, err := svc.GenerateAddress(context.Background(), ctx.String("account"), chain)
	if err != nil {
		return err
	}

	printRespJSON(address)
	return nil
}

func listAddressesAction(ctx *cli.Context) error {
	svc, cleanup, err := getService(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	addresses, err := svc.ListAddresses(context.Background(), ctx.String("account"))
	if err != nil {
		return err
	}

	printRespJSON(addresses)
	return nil
}
