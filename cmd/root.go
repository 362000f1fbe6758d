package cmd

import (
	"github.com/carousell/ct-go/pkg/logger/log"
	"github.com/spf13/cobra"

	"github.com/partshub/catalog-service/internal/app"
	"github.com/partshub/catalog-service/internal/kafka"
	"github.com/partshub/catalog-service/internal/server"
)

var rootCmd = &cobra.Command{
	Use:           "catalog-service",
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		app.Invoke(
			server.StartServer,
			kafka.StartConsumeEvents,
		).Run()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
