package main

import (
	"bytes"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"cvpdf/internal/config"
	"cvpdf/internal/mail"
	"cvpdf/internal/server"
)

var (
	mailSections []string
	mailSubject  string
)

var mailCmd = &cobra.Command{
	Use:   "mail",
	Short: "Render the résumé and email it",
	Long:  "Renders the résumé in memory and sends it as an attachment to the configured recipient.",
	RunE:  runMail,
}

func init() {
	mailCmd.Flags().StringArrayVarP(&mailSections, "sec", "s", nil, "Section key to include (repeatable)")
	mailCmd.Flags().StringVar(&mailSubject, "subject", "Hoja de vida", "Email subject")
	rootCmd.AddCommand(mailCmd)
}

func runMail(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.MailReady(); err != nil {
		return err
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

	var buf bytes.Buffer
	sum, err := newComposer(cfg).Render(&buf, data, selection(mailSections, cfg))
	if err != nil {
		return err
	}

	if err := mail.Send(cfg, mailSubject, mail.Attachment{Filename: server.Filename, Data: buf.Bytes()}); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	log.Printf("[MAIL] Document %s sent to %s", sum.ID, cfg.Email.To)
	return nil
}
