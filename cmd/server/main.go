// Copyright 2025 Peter Van Percson
// Licensed under the EUPL-1.2

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/petervanpercson/buildcored/internal/config"
	"github.com/petervanpercson/buildcored/internal/database"
	"github.com/petervanpercson/buildcored/internal/repository"
	"github.com/petervanpercson/buildcored/internal/server"
	"github.com/urfave/cli/v3"
)

// Version information (set via ldflags during build)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	cmd := &cli.Command{
		Name:    "buildcored",
		Usage:   "Hiring-signal platform server",
		Version: fmt.Sprintf("%s (built %s)", Version, BuildTime),
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Start the API server",
				Flags:  config.Flags(),
				Action: server.Run,
			},
			{
				Name:  "create-company-token",
				Usage: "Register a company and print its access token",
				Flags: append(config.Flags(),
					&cli.StringFlag{
						Name:     "company-name",
						Usage:    "Name of the company",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "email",
						Usage:    "Contact email of the company",
						Required: true,
					},
				),
				Action: createCompanyToken,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// createCompanyToken registers a company directly against the database.
// Token distribution to the company happens out of band.
func createCompanyToken(ctx context.Context, cmd *cli.Command) error {
	cfg := config.NewFromCLI(cmd)

	db, err := database.Open(cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	repo := repository.New(db)
	company, err := repo.CreateCompany(ctx, cmd.String("company-name"), cmd.String("email"))
	if err != nil {
		return fmt.Errorf("failed to create company token: %w", err)
	}

	fmt.Printf("company: %s\ntoken:   %s\n", company.CompanyName, company.Token)
	return nil
}
