package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/linode/legacy-to-techdocs/internal/config"
)

var convertCmd = &cobra.Command{
	Use:   "convert <url>...",
	Short: "Convert the given API docs URL to a TechDocs URL",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := config.FromViper()

	translator, err := loadTranslator(cfg)
	if err != nil {
		return err
	}

	converted := make([]string, 0, len(args))
	for _, rawURL := range args {
		result, err := translator.Translate(rawURL)
		if err != nil {
			return err
		}
		converted = append(converted, result)
	}

	fmt.Println(strings.Join(converted, " "))
	return nil
}
