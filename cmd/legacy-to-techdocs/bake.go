package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/linode/legacy-to-techdocs/internal/cache"
	"github.com/linode/legacy-to-techdocs/internal/config"
	"github.com/linode/legacy-to-techdocs/internal/spec"
)

var bakeCmd = &cobra.Command{
	Use:   "bake",
	Short: "Bake the legacy and new OpenAPI specs for faster runtime execution",
	Long: `Parses both OpenAPI specs, builds their operation indexes and writes them
to a baked cache file. Later convert/replace/serve runs load the cache
instead of re-parsing the specs, as long as it is newer than both inputs.`,
	RunE: runBake,
}

var (
	bakeLegacySpec string
	bakeNewSpec    string
	bakeOutput     string
)

func init() {
	bakeCmd.Flags().StringVarP(&bakeLegacySpec, "legacy-spec", "l", "", "path to the legacy OpenAPI spec file")
	bakeCmd.Flags().StringVarP(&bakeNewSpec, "new-spec", "n", "", "path to the new TechDocs spec file")
	bakeCmd.Flags().StringVarP(&bakeOutput, "output-file", "o", "", "file to write the baked cache to")
}

func runBake(cmd *cobra.Command, args []string) error {
	cfg := config.FromViper()

	legacyPath := cfg.Specs.Legacy
	if bakeLegacySpec != "" {
		legacyPath = bakeLegacySpec
	}
	newPath := cfg.Specs.New
	if bakeNewSpec != "" {
		newPath = bakeNewSpec
	}
	output := cfg.Cache.Path
	if bakeOutput != "" {
		output = bakeOutput
	}

	legacy, err := spec.LoadFile(legacyPath)
	if err != nil {
		return err
	}

	target, err := spec.LoadFile(newPath)
	if err != nil {
		return err
	}

	if err := cache.Bake(output, legacy, target, legacyPath, newPath); err != nil {
		return err
	}

	log.Printf("Baked %d legacy and %d new operations to %s", legacy.Len(), target.Len(), output)
	return nil
}
