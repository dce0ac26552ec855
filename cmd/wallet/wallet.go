package main

import (
	"context"
	"encoding/hex"

	"github.com/urfave/cli/v2"

	"github.com/dashwallet/walletd/internal/core/domain"
)

var createwallet = cli.Command{
	Name:  "createwallet",
	Usage: "store a new wallet from an already encrypted seed",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "name",
			Usage:    "display name of the wallet",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "network",
			Usage: "one of mainnet, testnet, devnet, regtest",
			Value: string(domain.NetworkMainnet),
		},
		&cli.StringFlag{
			Name:     "encrypted_seed",
			Usage:    "hex encoded encrypted seed",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "seed_hash",
			Usage:    "content hash of the plaintext seed",
			Required: true,
		},
	},
	Action: createWalletAction,
}

var listwallets = cli.Command{
	Name:   "listwallets",
	Usage:  "list all wallets stored on this device",
	Action: listWalletsAction,
}

var deletewallet = cli.Command{
	Name:  "deletewallet",
	Usage: "delete a wallet with all its accounts and addresses",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "wallet",
			Usage:    "id of the wallet",
			Required: true,
		},
	},
	Action: deleteWalletAction,
}

func createWalletAction(ctx *cli.Context) error {
	svc, cleanup, err := getService(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	encryptedSeed, err := hex.DecodeString(ctx.String("encrypted_seed"))
	if err != nil {
		return err
	}

	wallet, err := svc.CreateWallet(
		context.Background(),
		ctx.String("name"),
		domain.Network(ctx.String("network")),
		encryptedSeed,
		ctx.String("seed_hash"),
	)
	if err != nil {
		return err
	}

	printRespJSON(wallet)
	return nil
}

func listWalletsAction(ctx *cli.Context) error {
	svc, cleanup, err := getService(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	wallets, err := svc.ListWallets(context.Background())
	if err != nil {
		return err
	}

	printRespJSON(wallets)
	return nil
}

func deleteWalletAction(ctx *cli.Context) error {
	svc, cleanup, err := getService(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	return svc.DeleteWallet(context.Background(), ctx.String("wallet"))
}
