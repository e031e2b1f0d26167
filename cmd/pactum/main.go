package main

import (
	"os"

	"github.com/spf13/cobra"

	"pactum/internal/interfaces/cli/migrate"
	"pactum/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pactum",
		Short: "Pactum - contracting and billing lifecycle engine",
		Long:  `Pactum manages contracting parties, plan catalogs, contract lifecycles and payment settlement against an external gateway.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
