package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/linode/legacy-to-techdocs/internal/config"
	"github.com/linode/legacy-to-techdocs/internal/replacer"
)

var replaceCmd = &cobra.Command{
	Use:   "replace [flags] <path>...",
	Short: "Replace all legacy API docs URLs in files with their TechDocs counterparts",
	Long: `Rewrites every legacy docs URL found in the given files. Without -w the
rewritten content is printed to stdout (single file only); with -w changes
are written back in place. URLs that cannot be converted are left untouched
and reported on stderr.`,
	RunE: runReplace,
}

var (
	replaceWrite    bool
	replaceRecurse  bool
	replaceFileList bool
	replaceForce    bool
)

func init() {
	replaceCmd.Flags().BoolVarP(&replaceWrite, "write", "w", false, "write changes directly to the files")
	replaceCmd.Flags().BoolVarP(&replaceRecurse, "recurse", "r", false, "recurse into directories")
	replaceCmd.Flags().BoolVarP(&replaceFileList, "files-from-stdin", "f", false, "read a newline-separated file list from stdin")
	replaceCmd.Flags().BoolVar(&replaceForce, "force", false, "continue past URLs that cannot be converted")
}

func runReplace(cmd *cobra.Command, args []string) error {
	cfg := config.FromViper()

	paths := args
	if replaceFileList {
		fromStdin, err := replacer.ReadFileList(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading file list from stdin: %w", err)
		}
		paths = append(paths, fromStdin...)
	}
	if len(paths) == 0 {
		return fmt.Errorf("no paths given")
	}

	translator, err := loadTranslator(cfg)
	if err != nil {
		return err
	}

	results, err := replacer.Run(translator, paths, replacer.Options{
		Write:   replaceWrite,
		Recurse: replaceRecurse,
		Force:   replaceForce,
		Workers: cfg.Replace.Workers,
	}, os.Stdout)
	if err != nil {
		return err
	}

	replacer.Report(os.Stderr, results)
	return nil
}
