package runner

import (
	"sync"
	"time"
)

// EventType represents the type of batch-scan event.
type EventType string

const (
	// Run lifecycle events
	EventRunStarted   EventType = "run_started"
	EventRunCompleted EventType = "run_completed"

	// Per-file events
	EventFileStarted   EventType = "file_started"
	EventFileCompleted EventType = "file_completed"
	EventFileSkipped   EventType = "file_skipped"
)

// Event represents an observable batch-scan event with typed data.
type Event struct {
	Type      EventType      `json:"type"`
	Timestamp time.Time      `json:"timestamp"`
	Data      map[string]any `json:"data"`
}

// EventEmitter manages event listeners and dispatches events.
type EventEmitter struct {
	mu        sync.RWMutex
	listeners []func(Event)
}

// NewEventEmitter creates a new EventEmitter.
func NewEventEmitter() *EventEmitter {
	return &EventEmitter{listeners: make([]func(Event), 0)}
}

// On registers a listener function to receive events.
// Listeners are called synchronously in registration order.
func (e *EventEmitter) On(listener func(Event)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, listener)
}

// Emit dispatches an event to all registered listeners. Emit is safe to
// call from concurrent scan workers; listeners must tolerate that.
func (e *EventEmitter) Emit(event Event) {
	if e == nil {
		return
	}
	e.mu.RLock()
	listeners := make([]func(Event), len(e.listeners))
	copy(listeners, e.listeners)
	e.mu.RUnlock()

	for _, listener := range listeners {
		listener(event)
	}
}

// ListenerCount returns the number of registered listeners.
func (e *EventEmitter) ListenerCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.listeners)
}

// RunStartedEvent creates a run_started event.
func RunStartedEvent(id string, files int) Event {
	return Event{
		Type:      EventRunStarted,
		Timestamp: time.Now(),
		Data: map[string]any{
			"id":    id,
			"files": files,
		},
	}
}

// RunCompletedEvent creates a run_completed event.
func RunCompletedEvent(id string, duration time.Duration, files, errors int) Event {
	return Event{
		Type:      EventRunCompleted,
		Timestamp: time.Now(),
		Data: map[string]any{
			"id":          id,
			"duration_ms": duration.Milliseconds(),
			"files":       files,
			"errors":      errors,
		},
	}
}

// FileStartedEvent creates a file_started event.
func FileStartedEvent(jobID, path string) Event {
	return Event{
		Type:      EventFileStarted,
		Timestamp: time.Now(),
		Data: map[string]any{
			"job_id": jobID,
			"path":   path,
		},
	}
}

// FileCompletedEvent creates a file_completed event.
func FileCompletedEvent(jobID, path string, tokens, errors int, duration time.Duration) Event {
	return Event{
		Type:      EventFileCompleted,
		Timestamp: time.Now(),
		Data: map[string]any{
			"job_id":      jobID,
			"path":        path,
			"tokens":      tokens,
			"errors":      errors,
			"duration_ms": duration.Milliseconds(),
		},
	}
}

// FileSkippedEvent creates a file_skipped event (run canceled before the
// job started).
func FileSkippedEvent(jobID, path string) Event {
	return Event{
		Type:      EventFileSkipped,
		Timestamp: time.Now(),
		Data: map[string]any{
			"job_id": jobID,
			"path":   path,
		},
	}
}
