package main

import (
	"context"
	"log"
	"os"

	"cvpdf/internal/config"
	"cvpdf/internal/cv"
	"cvpdf/internal/store"
)

// openSource returns the configured data source and a function releasing it.
// A database URL takes precedence over a data file.
func openSource(ctx context.Context, cfg *config.Config) (store.Source, func(), error) {
	if cfg.Source.DatabaseURL != "" {
		db, err := store.Connect(ctx, cfg.Source.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		log.Printf("[STORE] Reading profile from database")
		return db, db.Close, nil
	}
	log.Printf("[STORE] Reading profile from %s", cfg.Source.File)
	return store.NewFile(cfg.Source.File), func() {}, nil
}

func newComposer(cfg *config.Config) *cv.Composer {
	return cv.NewComposer(
		cv.WithMediaRoot(cfg.Source.MediaRoot),
		cv.WithLogger(log.New(os.Stderr, "", log.LstdFlags)),
	)
}

// selection resolves the sections to render: flags win over the config
// file, and with neither every section is rendered.
func selection(flags []string, cfg *config.Config) cv.Selection {
	switch {
	case len(flags) > 0:
		return cv.ParseSections(flags)
	case len(cfg.Render.Sections) > 0:
		return cv.ParseSections(cfg.Render.Sections)
	}
	return cv.AllSections()
}
