package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jfmengels/elm-lint/internal/config"
	"github.com/jfmengels/elm-lint/internal/logging"
	"github.com/jfmengels/elm-lint/internal/reporter"
	"github.com/jfmengels/elm-lint/pkg/fix"
	"github.com/jfmengels/elm-lint/pkg/fsutil"
	"github.com/jfmengels/elm-lint/pkg/lint"
	"github.com/jfmengels/elm-lint/pkg/parser/reference"
	"github.com/jfmengels/elm-lint/pkg/project"
	"github.com/jfmengels/elm-lint/pkg/rules"
)

// ErrLintIssuesFound is returned when the run completes but reports
// diagnostics; it only signals the process exit code and is never logged.
var ErrLintIssuesFound = errors.New("lint issues found")

// elmExtension is the only source extension this reference toolchain
// recognizes (see spec §1: the source language is Elm-like).
const elmExtension = ".elm"

func newLintCommand() *cobra.Command {
	var format string
	var applyFix bool
	var showDiff bool
	var disable []string

	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Lint Elm-like source files",
		Long: `Lint walks every .elm file under the given paths (default: the current
directory), runs the registered rules against each one independently, and
prints the resulting diagnostics.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := cmd.Flags().GetString("config")
			if err != nil {
				return fmt.Errorf("read --config: %w", err)
			}
			colorMode, err := cmd.Flags().GetString("color")
			if err != nil {
				colorMode = "auto"
			}
			opts := lintOptions{
				format:     format,
				applyFix:   applyFix,
				showDiff:   showDiff,
				disable:    disable,
				configPath: configPath,
				colorMode:  colorMode,
			}
			if !cmd.Flags().Changed("format") {
				opts.format = ""
			}
			return runLint(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json")
	cmd.Flags().BoolVar(&applyFix, "fix", false, "apply available fixes in place")
	cmd.Flags().BoolVar(&showDiff, "diff", false, "print a unified diff of available fixes instead of applying them")
	cmd.Flags().StringSliceVar(&disable, "disable", nil, "rule names to disable")

	return cmd
}

// lintOptions collects a lint run's resolved flags, including the ones
// inherited from the root command's persistent flag set.
type lintOptions struct {
	format     string
	applyFix   bool
	showDiff   bool
	disable    []string
	configPath string
	colorMode  string
}

func runLint(cmd *cobra.Command, args []string, opts lintOptions) error {
	logger := logging.Default()

	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return fmt.Errorf("load config %s: %w", opts.configPath, err)
		}
		cfg = loaded
	}

	paths := args
	if len(paths) == 0 {
		paths = cfg.Paths
		if opts.configPath != "" {
			base := filepath.Dir(opts.configPath)
			resolved := make([]string, len(paths))
			for i, p := range paths {
				if filepath.IsAbs(p) {
					resolved[i] = p
				} else {
					resolved[i] = filepath.Join(base, p)
				}
			}
			paths = resolved
		}
	}

	files, err := discoverElmFiles(paths)
	if err != nil {
		return fmt.Errorf("discover files: %w", err)
	}

	disabled := make(map[string]bool, len(opts.disable))
	for _, name := range opts.disable {
		disabled[name] = true
	}

	registry := lint.NewRegistry()
	for _, r := range rules.All() {
		if disabled[r.Name()] || !cfg.RuleEnabled(r.Name()) {
			continue
		}
		registry.Register(r)
	}

	proj := project.New(nil)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	out := cmd.OutOrStdout()

	var results []reporter.FileResult
	totalIssues := 0

	for _, path := range files {
		source, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		diags := lint.Lint(reference.Parse, reference.PostProcess, registry.Rules(), proj,
			lint.File{Path: path, Source: string(source)})
		totalIssues += len(diags)

		switch {
		case opts.showDiff && len(diags) > 0:
			if err := printFixDiff(out, path, string(source), diags); err != nil {
				logger.Warn("diff failed", logging.FieldPath, path, logging.FieldError, err)
			}
		case opts.applyFix && len(diags) > 0:
			fixed, err := applyFixesToFile(ctx, path, string(source), diags)
			if err != nil {
				logger.Warn("fix failed", logging.FieldPath, path, logging.FieldError, err)
			} else if fixed {
				logger.Info("fixed", logging.FieldPath, path, logging.FieldRulesApplied, rulesWithFixes(diags))
			}
		}

		results = append(results, reporter.FileResult{Path: path, Source: string(source), Diagnostics: diags})
	}

	format := opts.format
	if format == "" {
		format = string(cfg.Format)
	}
	if err := writeReport(out, config.OutputFormat(format), opts.colorMode, results, len(files), totalIssues); err != nil {
		return err
	}

	if totalIssues > 0 {
		return ErrLintIssuesFound
	}
	return nil
}

func rulesWithFixes(diags []lint.Diagnostic) []string {
	var names []string
	for _, d := range diags {
		if d.HasFixes() {
			names = append(names, d.RuleName())
		}
	}
	return names
}

func writeReport(out io.Writer, format config.OutputFormat, colorMode string, results []reporter.FileResult, filesChecked, totalIssues int) error {
	if format == config.FormatJSON {
		return reporter.RenderJSON(out, results)
	}
	styles := reporter.NewStyles(reporter.ResolveColor(colorMode, out))
	reporter.RenderText(out, styles, results)
	reporter.Summarize(out, styles, filesChecked, totalIssues)
	return nil
}

// applyFixesToFile runs the fix engine against every diagnostic's fixes,
// backs up the original file, and on success writes the rewritten source
// back atomically.
func applyFixesToFile(ctx context.Context, path, source string, diags []lint.Diagnostic) (bool, error) {
	reparse := func(s string) error {
		_, err := reference.Parse(s)
		return err
	}

	result := fix.ApplyEditsToDiagnostics(diags, source, reparse)
	switch result.Kind() {
	case fix.Successful:
		newSource, _ := result.Source()
		if _, err := fsutil.CreateBackup(ctx, path, fsutil.BackupConfig{Enabled: true, Mode: fsutil.BackupModeSidecar}); err != nil {
			return false, fmt.Errorf("backup %s: %w", path, err)
		}
		if err := fsutil.WriteAtomic(ctx, path, []byte(newSource), 0); err != nil {
			return false, fmt.Errorf("write %s: %w", path, err)
		}
		return true, nil
	case fix.Errored:
		if result.ErrorKind() == fix.Unchanged {
			return false, nil
		}
		return false, fmt.Errorf("fix rejected: %v", result.ErrorKind())
	default:
		return false, nil
	}
}

// printFixDiff computes the fixed source without writing it and prints a
// unified diff, for --diff dry runs.
func printFixDiff(out io.Writer, path, source string, diags []lint.Diagnostic) error {
	reparse := func(s string) error {
		_, err := reference.Parse(s)
		return err
	}

	result := fix.ApplyEditsToDiagnostics(diags, source, reparse)
	if result.Kind() != fix.Successful {
		return nil
	}
	newSource, _ := result.Source()
	d := fix.GenerateDiff(path, []byte(source), []byte(newSource))
	if !d.HasChanges() {
		return nil
	}
	_, err := fmt.Fprint(out, d.FullString())
	return err
}

// discoverElmFiles expands paths (files or directories) into a
// deterministically sorted, deduplicated list of .elm file paths.
func discoverElmFiles(paths []string) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", p, err)
		}

		if !info.IsDir() {
			if _, ok := seen[p]; !ok {
				seen[p] = struct{}{}
				files = append(files, p)
			}
			continue
		}

		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || filepath.Ext(path) != elmExtension {
				return nil
			}
			if _, ok := seen[path]; ok {
				return nil
			}
			seen[path] = struct{}{}
			files = append(files, path)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", p, err)
		}
	}

	sort.Strings(files)
	return files, nil
}
