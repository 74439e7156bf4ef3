package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Red0MFHA/CompilerConstruction/report"
	"github.com/Red0MFHA/CompilerConstruction/runner"
)

var scanCmd = &cobra.Command{
	Use:   "scan <file>...",
	Short: "Tokenize one or more source files",
	Long:  "Scan each source file into a token stream, reporting the identifier registry, lexical errors, and statistics per file.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runScan,
}

func init() {
	scanCmd.Flags().Bool("tokens-only", false, "Print only the token stream")
	scanCmd.Flags().Bool("no-stats", false, "Omit the statistics section")
	scanCmd.Flags().String("out", "", "Write per-file .report files to this directory instead of stdout")

	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	verbose := viper.GetBool("verbose")
	debug := viper.GetBool("debug")
	maxParallel := viper.GetInt("max_parallel")
	tokensOnly, _ := cmd.Flags().GetBool("tokens-only")
	noStats, _ := cmd.Flags().GetBool("no-stats")
	outDir, _ := cmd.Flags().GetString("out")

	switch {
	case debug:
		log.SetLevel(log.DebugLevel)
	case verbose:
		log.SetLevel(log.InfoLevel)
	default:
		log.SetLevel(log.WarnLevel)
	}

	jobs := make([]runner.Job, 0, len(args))
	for _, path := range args {
		job, err := runner.LoadJob(path)
		if err != nil {
			return fmt.Errorf("loading %s: %w", path, err)
		}
		jobs = append(jobs, job)
	}

	if outDir != "" {
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	var emitter *runner.EventEmitter
	if verbose || debug {
		emitter = runner.NewEventEmitter()
		emitter.On(terminalEventListener())
	}

	results := runner.Run(context.Background(), jobs, runner.Options{
		MaxParallel: maxParallel,
		Emitter:     emitter,
	})

	totalErrors := 0
	for _, res := range results {
		if res.Err != nil {
			return fmt.Errorf("scanning %s: %w", res.Job.Path, res.Err)
		}
		totalErrors += res.Stats.Errors

		if outDir != "" {
			name := filepath.Base(res.Job.Path) + ".report"
			f, err := os.Create(filepath.Join(outDir, name))
			if err != nil {
				return fmt.Errorf("creating report file: %w", err)
			}
			werr := writeResult(f, res, tokensOnly, noStats)
			if cerr := f.Close(); werr == nil {
				werr = cerr
			}
			if werr != nil {
				return fmt.Errorf("writing report for %s: %w", res.Job.Path, werr)
			}
			continue
		}

		if len(results) > 1 {
			fmt.Fprintf(os.Stdout, "==> %s\n", res.Job.Path)
		}
		if err := writeResult(os.Stdout, res, tokensOnly, noStats); err != nil {
			return err
		}
	}

	if totalErrors > 0 {
		fmt.Fprintf(os.Stderr, "lexscan: %d lexical error(s) across %d file(s)\n", totalErrors, len(results))
	}
	return nil
}

// writeResult renders one file's artifacts in report order: tokens,
// registry, diagnostics, statistics.
func writeResult(w io.Writer, res runner.FileResult, tokensOnly, noStats bool) error {
	if err := report.WriteTokens(w, res.Tokens); err != nil {
		return err
	}
	if tokensOnly {
		return nil
	}
	fmt.Fprintln(w)
	if err := report.WriteSymbols(w, res.Symbols); err != nil {
		return err
	}
	fmt.Fprintln(w)
	if err := report.WriteDiagnostics(w, res.Diagnostics); err != nil {
		return err
	}
	if noStats {
		return nil
	}
	fmt.Fprintln(w)
	return report.WriteStats(w, res.Stats)
}

// terminalEventListener returns an event listener that prints scan progress.
func terminalEventListener() func(runner.Event) {
	return func(e runner.Event) {
		switch e.Type {
		case runner.EventRunStarted:
			files, _ := e.Data["files"].(int)
			fmt.Fprintf(os.Stderr, "[scan] Starting: %d file(s)\n", files)

		case runner.EventFileCompleted:
			path, _ := e.Data["path"].(string)
			tokens, _ := e.Data["tokens"].(int)
			errors, _ := e.Data["errors"].(int)
			fmt.Fprintf(os.Stderr, "[scan] %s: %d tokens, %d error(s)\n", path, tokens, errors)

		case runner.EventRunCompleted:
			durationMs, _ := e.Data["duration_ms"].(int64)
			fmt.Fprintf(os.Stderr, "[scan] Completed in %dms\n", durationMs)
		}
	}
}
