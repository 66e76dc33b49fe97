package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cvpdf/internal/config"
)

var (
	renderSections []string
	renderOutput   string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the résumé to a PDF file",
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringArrayVarP(&renderSections, "sec", "s", nil, "Section key to include (repeatable)")
	renderCmd.Flags().StringVarP(&renderOutput, "out", "o", "", "Path to output PDF file (default from config)")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	out := cfg.Render.Output
	if renderOutput != "" {
		out = renderOutput
	}

	ctx := cmd.Context()
	source, closeSource, err := openSource(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeSource()

	data, err := source.Load(ctx)
	if err != nil {
		return err
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	sum, err := newComposer(cfg).Render(f, data, selection(renderSections, cfg))
	if closeErr := f.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("failed to close output file: %w", closeErr)
	}
	if err != nil {
		_ = os.Remove(out)
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d page(s))\n", out, sum.Pages)
	return nil
}
