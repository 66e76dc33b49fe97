package main

import (
	"context"

	"github.com/spf13/cobra"

	"cvpdf/internal/config"
	"cvpdf/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the résumé over HTTP",
	Long:  `Start an HTTP server that renders the résumé at /pdf/?sec=<key>&sec=<key>.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	port := cfg.Server.Port
	if servePort != 0 {
		port = servePort
	}

	source, closeSource, err := openSource(context.Background(), cfg)
	if err != nil {
		return err
	}
	defer closeSource()

	return server.New(port, source, newComposer(cfg)).Start()
}
