package main

import (
	"os"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	server_config "github.com/carson-networks/gst-server/internal/config"
	"github.com/carson-networks/gst-server/internal/storage"
)

// normalize_amounts rewrites negative transaction amounts of one user as
// their absolute value. The transaction type carries the direction.
func main() {
	app := &cli.App{
		Name:  "normalize_amounts",
		Usage: "store every transaction amount of a user as a positive number",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "user",
				Usage:    "user UUID",
				Required: true,
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("normalize_amounts")
	}
}

func run(c *cli.Context) error {
	userID, err := uuid.FromString(c.String("user"))
	if err != nil {
		return cli.Exit("invalid --user: "+err.Error(), 2)
	}

	env, err := server_config.ProcessEnvironmentVariables()
	if err != nil {
		return err
	}

	store := storage.NewStorage(env)
	defer store.DB.Close()

	updated, err := store.Transactions.NormalizeAmounts(c.Context, userID)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"userID":  userID,
		"updated": updated,
	}).Info("NormalizeAmounts.Complete")
	return nil
}
