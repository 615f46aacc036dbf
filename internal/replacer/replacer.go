// Package replacer applies URL translation across files: directory walking,
// parallel per-file rewriting and the replacement report.
package replacer

import (
	"bufio"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"text/tabwriter"

	"golang.org/x/sync/errgroup"

	"github.com/linode/legacy-to-techdocs/internal/models"
	"github.com/linode/legacy-to-techdocs/internal/translate"
)

// Options control a batch replacement run.
type Options struct {
	Write   bool // Rewrite files in place instead of printing to stdout
	Recurse bool // Descend into directories
	Force   bool // Keep going when a URL cannot be converted
	Workers int  // Max concurrent files; <=0 means GOMAXPROCS
}

// Result is the outcome for one file.
type Result struct {
	File         string
	Replacements []models.Replacement
	Skips        []models.Skip
	Changed      bool
}

// Run translates every legacy URL in the given paths. Each file is
// independent and the translator is read-only, so files are processed by a
// bounded worker pool. Without Options.Write the rewritten content is
// streamed to stdout, which is only meaningful for a single input file.
func Run(t *translate.Translator, paths []string, opts Options, stdout io.Writer) ([]Result, error) {
	files, err := Expand(paths, opts.Recurse)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no input files")
	}
	if !opts.Write && len(files) > 1 {
		return nil, fmt.Errorf("-w must be given when more than one file is processed")
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(files))
	outputs := make([]string, len(files))

	var g errgroup.Group
	g.SetLimit(workers)

	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			content, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("reading %s: %w", file, err)
			}

			updated, replacements, skips := t.ReplaceAll(string(content), file)
			if len(skips) > 0 && !opts.Force {
				first := skips[0]
				return fmt.Errorf("%s, line %d position %d in %s (use --force to continue past unconvertible URLs)",
					first.Reason, first.Line, first.Column, first.File)
			}

			results[i] = Result{
				File:         file,
				Replacements: replacements,
				Skips:        skips,
				Changed:      updated != string(content),
			}

			if opts.Write {
				if results[i].Changed {
					if err := os.WriteFile(file, []byte(updated), 0644); err != nil {
						return fmt.Errorf("writing %s: %w", file, err)
					}
				}
				return nil
			}

			outputs[i] = updated
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if !opts.Write && stdout != nil {
		for _, out := range outputs {
			if _, err := io.WriteString(stdout, out); err != nil {
				return nil, err
			}
		}
	}

	return results, nil
}

// Expand resolves the given paths to a sorted list of regular files,
// descending into directories when recurse is set.
func Expand(paths []string, recurse bool) ([]string, error) {
	var files []string

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			files = append(files, p)
			continue
		}

		if !recurse {
			return nil, fmt.Errorf("%s is a directory (use -r to recurse)", p)
		}

		err = filepath.WalkDir(p, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(files)
	return files, nil
}

// ReadFileList reads a newline-separated file list, one path per line,
// skipping blank lines.
func ReadFileList(r io.Reader) ([]string, error) {
	var files []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			files = append(files, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return files, nil
}

// Report prints the replacement table and skip warnings for a run.
func Report(w io.Writer, results []Result) {
	for _, result := range results {
		for _, skip := range result.Skips {
			fmt.Fprintf(w, "WARN: %s, line %d position %d in %s\n",
				skip.Reason, skip.Line, skip.Column, skip.File)
		}
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, result := range results {
		for _, rep := range result.Replacements {
			fmt.Fprintf(tw, "%s (%d:%d)\t%s\t=>\t%s\n",
				rep.File, rep.Line, rep.Column,
				formatURLForOutput(rep.Before), formatURLForOutput(rep.After))
		}
	}
	tw.Flush()
}

// formatURLForOutput strips the scheme and host so long URLs do not blow out
// the report columns.
func formatURLForOutput(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	result := parsed.Path
	if parsed.Fragment != "" {
		result += "#" + parsed.Fragment
	}
	if result == "" {
		return raw
	}
	return result
}
