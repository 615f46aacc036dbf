package main

import (
	"log"

	"github.com/linode/legacy-to-techdocs/internal/cache"
	"github.com/linode/legacy-to-techdocs/internal/config"
	"github.com/linode/legacy-to-techdocs/internal/spec"
	"github.com/linode/legacy-to-techdocs/internal/translate"
)

// loadTranslator builds the URL translator, preferring the baked cache when
// it is present and newer than both source specs.
func loadTranslator(cfg *config.Config) (*translate.Translator, error) {
	bundle, err := cache.LoadIfFresh(cfg.Cache.Path, cfg.Specs.Legacy, cfg.Specs.New)
	if err != nil {
		log.Printf("Warning: ignoring baked cache: %v", err)
	}
	if bundle != nil {
		return translate.NewWithBaseURL(bundle.Legacy, bundle.Target, cfg.TechDocs.BaseURL), nil
	}

	legacy, err := spec.LoadFile(cfg.Specs.Legacy)
	if err != nil {
		return nil, err
	}

	target, err := spec.LoadFile(cfg.Specs.New)
	if err != nil {
		return nil, err
	}

	return translate.NewWithBaseURL(legacy, target, cfg.TechDocs.BaseURL), nil
}
