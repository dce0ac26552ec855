package main

import (
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"

	"github.com/dashwallet/walletd/config"
	"github.com/dashwallet/walletd/internal/core/application"
	"github.com/dashwallet/walletd/internal/infrastructure/deriver"
	dbbadger "github.com/dashwallet/walletd/internal/infrastructure/storage/db/badger"
	"github.com/dashwallet/walletd/internal/infrastructure/syncengine"
)

func main() {
	app := cli.NewApp()

	app.Version = "0.1.0"
	app.Name = "wallet CLI"
	app.Usage = "Command line interface for the walletd data store"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "datadir",
			Usage: "walletd data directory",
			Value: config.GetString(config.DatadirKey),
		},
	}
	app.Commands = append(
		app.Commands,
		&createwallet,
		&listwallets,
		&deletewallet,
		&createaccount,
		&listaccounts,
		&receiveaddress,
		&newaddress,
		&listaddresses,
		&balance,
		&syncstatus,
	)

	if err := app.Run(os.Args); err != nil {
		fatal(err)
	}
}

// getService opens the store under the datadir and wires the wallet service
// on top of it. The CLI operates on the store directly, so it must not run
// while the daemon holds the db lock.
func getService(ctx *cli.Context) (*application.WalletService, func(), error) {
	dbDir := filepath.Join(ctx.String("datadir"), config.DbLocation)
	dbManager, err := dbbadger.NewDbManager(dbDir, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("opening db: %w", err)
	}

	svc := application.NewWalletService(
		dbManager, deriver.NewService(), syncengine.NewManual(),
	)
	cleanup := func() { dbManager.Close() }

	return svc, cleanup, nil
}

func printRespJSON(resp interface{}) {
	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		fatal(err)
	}
	fmt.Println(string(out))
}

// formatDash renders an amount in duffs as a fixed point DASH string.
func formatDash(duffs uint64) string {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(duffs), -8).StringFixed(8)
}

func fatal(err error) {
	_, _ = fmt.Fprintf(os.Stderr, "[wallet] %v\n", err)
	os.Exit(1)
}
