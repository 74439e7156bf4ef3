package runner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Red0MFHA/CompilerConstruction/lexer"
)

func TestNewJobAssignsUniqueIDs(t *testing.T) {
	a := NewJob("a.cc", []byte("declare A = 1;"))
	b := NewJob("b.cc", []byte("declare B = 2;"))
	assert.NotEmpty(t, a.ID)
	assert.NotEmpty(t, b.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestLoadJob(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.cc")
	require.NoError(t, os.WriteFile(path, []byte("declare X = 1;"), 0o644))

	job, err := LoadJob(path)
	require.NoError(t, err)
	assert.Equal(t, path, job.Path)
	assert.Equal(t, []byte("declare X = 1;"), job.Source)

	_, err = LoadJob(filepath.Join(dir, "missing.cc"))
	assert.Error(t, err)
}

func TestRunScansAllJobsInOrder(t *testing.T) {
	jobs := []Job{
		NewJob("a.cc", []byte("declare Alpha = 1;")),
		NewJob("b.cc", []byte("flag")),
		NewJob("c.cc", []byte("")),
	}

	results := Run(context.Background(), jobs, Options{MaxParallel: 2})
	require.Len(t, results, 3)

	for i, res := range results {
		assert.Equal(t, jobs[i].ID, res.Job.ID, "results keep job order")
		require.NoError(t, res.Err)
		require.NotEmpty(t, res.Tokens)
		assert.Equal(t, lexer.TokenEOF, res.Tokens[len(res.Tokens)-1].Kind)
	}

	assert.Equal(t, 1, results[0].Symbols.Size())
	assert.False(t, results[0].Diagnostics.HasErrors())

	assert.True(t, results[1].Diagnostics.HasErrors())
	assert.Equal(t, 1, results[1].Stats.Errors)

	assert.Equal(t, 1, results[2].Stats.TotalTokens, "empty source still yields EOF")
}

func TestRunManyJobsBoundedParallel(t *testing.T) {
	var jobs []Job
	for i := 0; i < 32; i++ {
		src := fmt.Sprintf("declare Var%d = %d;", i, i)
		jobs = append(jobs, NewJob(fmt.Sprintf("f%d.cc", i), []byte(src)))
	}

	results := Run(context.Background(), jobs, Options{MaxParallel: 3})
	require.Len(t, results, 32)
	for i, res := range results {
		require.NoError(t, res.Err)
		sym, ok := res.Symbols.Lookup(fmt.Sprintf("Var%d", i))
		require.True(t, ok, "job %d", i)
		assert.Equal(t, 1, sym.Frequency)
	}
}

func TestRunEmitsEvents(t *testing.T) {
	emitter := NewEventEmitter()
	var mu sync.Mutex
	var types []EventType
	emitter.On(func(e Event) {
		mu.Lock()
		defer mu.Unlock()
		types = append(types, e.Type)
	})

	jobs := []Job{
		NewJob("a.cc", []byte("declare A = 1;")),
		NewJob("b.cc", []byte("declare B = 2;")),
	}
	Run(context.Background(), jobs, Options{MaxParallel: 1, Emitter: emitter})

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, types, 6) // run_started, 2x(file_started, file_completed), run_completed
	assert.Equal(t, EventRunStarted, types[0])
	assert.Equal(t, EventRunCompleted, types[len(types)-1])

	files := 0
	for _, typ := range types {
		if typ == EventFileCompleted {
			files++
		}
	}
	assert.Equal(t, 2, files)
}

func TestRunCanceledContextSkipsJobs(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	jobs := []Job{
		NewJob("a.cc", []byte("declare A = 1;")),
		NewJob("b.cc", []byte("declare B = 2;")),
	}
	results := Run(ctx, jobs, Options{})

	require.Len(t, results, 2)
	for _, res := range results {
		assert.ErrorIs(t, res.Err, context.Canceled)
		assert.Nil(t, res.Tokens)
	}
}

func TestRunDefaultsParallelism(t *testing.T) {
	// A zero or negative MaxParallel must not deadlock.
	jobs := []Job{NewJob("a.cc", []byte("declare A = 1;"))}
	results := Run(context.Background(), jobs, Options{MaxParallel: -1})
	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)
}

func TestEmitterListenerCount(t *testing.T) {
	emitter := NewEventEmitter()
	assert.Zero(t, emitter.ListenerCount())
	emitter.On(func(Event) {})
	emitter.On(func(Event) {})
	assert.Equal(t, 2, emitter.ListenerCount())
}

func TestNilEmitterIsSafe(t *testing.T) {
	var emitter *EventEmitter
	assert.NotPanics(t, func() {
		emitter.Emit(RunStartedEvent("id", 1))
	})
}

func TestEventConstructors(t *testing.T) {
	e := FileCompletedEvent("job-1", "a.cc", 10, 2, 0)
	assert.Equal(t, EventFileCompleted, e.Type)
	assert.Equal(t, "a.cc", e.Data["path"])
	assert.Equal(t, 10, e.Data["tokens"])
	assert.Equal(t, 2, e.Data["errors"])
	assert.False(t, e.Timestamp.IsZero())
}
