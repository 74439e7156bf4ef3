// Package runner drives batch lexical analysis: it fans a set of source
// files out to independent scanners with bounded parallelism and collects
// their artifacts. One scanner instance per source unit, no shared mutable
// state between them, so each file scans fully in parallel with the rest.
package runner

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/Red0MFHA/CompilerConstruction/lexer"
	"github.com/Red0MFHA/CompilerConstruction/report"
)

// Job is one source unit queued for scanning.
type Job struct {
	ID     string // unique per job, assigned at creation
	Path   string // display path; empty for in-memory sources
	Source []byte
}

// NewJob wraps an in-memory source in a Job with a fresh ID.
func NewJob(path string, source []byte) Job {
	return Job{ID: uuid.NewString(), Path: path, Source: source}
}

// LoadJob reads a source file into a Job.
func LoadJob(path string) (Job, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Job{}, fmt.Errorf("reading source file: %w", err)
	}
	return NewJob(path, src), nil
}

// FileResult carries one job's scan artifacts. Err is set only when the job
// never ran (canceled run); scanning itself cannot fail.
type FileResult struct {
	Job         Job
	Tokens      []lexer.Token
	Symbols     *lexer.SymbolTable
	Diagnostics *lexer.DiagnosticLog
	Stats       report.Stats
	Err         error
}

// Options configures a batch run.
type Options struct {
	MaxParallel int           // concurrent scanners; defaults to 4
	Emitter     *EventEmitter // optional progress events
}

// Run scans every job and returns results in job order. Cancellation via
// ctx is honored between jobs only: a scan in flight always completes
// (the engine has no suspension points), and jobs not yet started are
// marked with ctx.Err().
func Run(ctx context.Context, jobs []Job, opts Options) []FileResult {
	maxParallel := opts.MaxParallel
	if maxParallel < 1 {
		maxParallel = 4
	}

	runID := uuid.NewString()
	started := time.Now()
	opts.Emitter.Emit(RunStartedEvent(runID, len(jobs)))
	log.WithField("files", len(jobs)).Debugf("[runner]: start run %s", runID)

	results := make([]FileResult, len(jobs))
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, maxParallel)

	for i, job := range jobs {
		wg.Add(1)
		go func(idx int, j Job) {
			defer wg.Done()

			// Skip outright if the run was already canceled.
			select {
			case <-ctx.Done():
				opts.Emitter.Emit(FileSkippedEvent(j.ID, j.Path))
				results[idx] = FileResult{Job: j, Err: ctx.Err()}
				return
			default:
			}

			select {
			case semaphore <- struct{}{}:
				defer func() { <-semaphore }()
			case <-ctx.Done():
				opts.Emitter.Emit(FileSkippedEvent(j.ID, j.Path))
				results[idx] = FileResult{Job: j, Err: ctx.Err()}
				return
			}

			results[idx] = scanJob(j, opts.Emitter)
		}(i, job)
	}
	wg.Wait()

	errors := 0
	for _, res := range results {
		errors += res.Stats.Errors
	}
	opts.Emitter.Emit(RunCompletedEvent(runID, time.Since(started), len(jobs), errors))
	log.WithFields(log.Fields{
		"files":  len(jobs),
		"errors": errors,
	}).Debugf("[runner]: end run %s", runID)

	return results
}

func scanJob(job Job, emitter *EventEmitter) FileResult {
	emitter.Emit(FileStartedEvent(job.ID, job.Path))
	log.WithField("path", job.Path).Debug("[runner]: scanning")
	started := time.Now()

	s := lexer.NewScanner(job.Source)
	tokens := s.Scan()
	stats := report.Collect(tokens, s.Symbols(), s.Diagnostics(), s.Lines())

	if s.Diagnostics().HasErrors() {
		log.WithFields(log.Fields{
			"path":   job.Path,
			"errors": s.Diagnostics().Count(),
		}).Warn("[runner]: lexical errors")
	}
	emitter.Emit(FileCompletedEvent(job.ID, job.Path, len(tokens), stats.Errors, time.Since(started)))

	return FileResult{
		Job:         job,
		Tokens:      tokens,
		Symbols:     s.Symbols(),
		Diagnostics: s.Diagnostics(),
		Stats:       stats,
	}
}
