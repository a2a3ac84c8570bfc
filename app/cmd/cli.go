package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/crypto/bcrypt"

	"github.com/onsal/elektronik-storefront/app/configs"
)

func RunCli() {
	cmd := &cli.Command{
		Commands: []*cli.Command{
			{
				Name:  "generate-keys",
				Usage: "Generate new session authentication and encryption keys for .env",
				Action: func(ctx context.Context, c *cli.Command) error {
					if err := configs.GenerateAndPrintSessionKeys(); err != nil {
						return err
					}
					log.Println("✅ Key generation complete.")
					return nil
				},
			},
			{
				Name:      "hash-password",
				Usage:     "Hash an admin password for the ADMIN_PASSWORD_HASH .env entry",
				ArgsUsage: "<password>",
				Action: func(ctx context.Context, c *cli.Command) error {
					password := c.Args().First()
					if password == "" {
						return fmt.Errorf("usage: hash-password <password>")
					}
					if len(password) < 8 {
						return fmt.Errorf("password must be at least 8 characters")
					}
					hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
					if err != nil {
						return err
					}
					fmt.Printf("ADMIN_PASSWORD_HASH=%s\n", hash)
					return nil
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
