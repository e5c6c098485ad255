package filter

import (
	"context"
	"time"

	"github.com/asaidimu/go-events"
	"github.com/asaidimu/go-sift/core/predicate"
	"github.com/google/uuid"
)

// EventType identifies a point in a matcher operation's lifecycle.
type EventType string

// Emitted event types.
const (
	MatchStart     EventType = "filter:match:start"
	MatchSuccess   EventType = "filter:match:success"
	MatchFailed    EventType = "filter:match:failed"
	CompileStart   EventType = "filter:compile:start"
	CompileSuccess EventType = "filter:compile:success"
	CompileFailed  EventType = "filter:compile:failed"
)

// Event describes one matcher operation for subscribers.
type Event struct {
	Type         EventType `json:"type"`               // The type of event.
	Timestamp    int64     `json:"timestamp"`          // When the event occurred (Unix milliseconds).
	Operation    string    `json:"operation"`          // The operation being performed ("match" or "compile").
	EvaluationID string    `json:"evaluationId"`       // Correlates the start/success/failed events of one call.
	Filter       *Filter   `json:"filter,omitempty"`   // The filter involved in the operation.
	Record       Record    `json:"record,omitempty"`   // The record under evaluation (match only).
	Output       any       `json:"output,omitempty"`   // Result of the operation, if it succeeded.
	Error        *string   `json:"error,omitempty"`    // Error message if the operation failed.
	Duration     *int64    `json:"duration,omitempty"` // Duration of the operation in milliseconds.
}

// EventCallback is invoked for each event a subscriber receives.
type EventCallback func(ctx context.Context, event Event) error

// EventEmittingMatcher wraps a Matcher and emits lifecycle events around
// every operation.
type EventEmittingMatcher struct {
	matcher *Matcher
	bus     *events.TypedEventBus[Event]
}

// NewEventEmittingMatcher creates an event-emitting wrapper around a matcher.
func NewEventEmittingMatcher(matcher *Matcher) (*EventEmittingMatcher, error) {
	bus, err := events.NewTypedEventBus[Event](events.DefaultConfig())
	if err != nil {
		return nil, err
	}
	return &EventEmittingMatcher{
		matcher: matcher,
		bus:     bus,
	}, nil
}

// Subscribe registers a callback for a specific event type and returns an
// unsubscribe function.
func (e *EventEmittingMatcher) Subscribe(event EventType, callback EventCallback) func() {
	return e.bus.Subscribe(string(event), callback)
}

// Matcher returns the wrapped matcher, for registering operators.
func (e *EventEmittingMatcher) Matcher() *Matcher {
	return e.matcher
}

func (e *EventEmittingMatcher) emitEvent(event Event) {
	if e.bus != nil {
		e.bus.Emit(string(event.Type), event)
	}
}

// withEventEmission wraps an operation with start, success, and failure events.
func (e *EventEmittingMatcher) withEventEmission(
	operation string,
	startEventType EventType,
	successEventType EventType,
	failedEventType EventType,
	f *Filter,
	record Record,
	fn func() (any, error),
) (any, error) {
	startTime := time.Now()
	evaluationID := uuid.New().String()

	e.emitEvent(Event{
		Type:         startEventType,
		Timestamp:    startTime.UnixMilli(),
		Operation:    operation,
		EvaluationID: evaluationID,
		Filter:       f,
		Record:       record,
	})

	result, err := fn()
	duration := time.Since(startTime).Milliseconds()

	if err != nil {
		errStr := err.Error()
		e.emitEvent(Event{
			Type:         failedEventType,
			Timestamp:    time.Now().UnixMilli(),
			Operation:    operation,
			EvaluationID: evaluationID,
			Filter:       f,
			Record:       record,
			Error:        &errStr,
			Duration:     &duration,
		})
		return nil, err
	}

	e.emitEvent(Event{
		Type:         successEventType,
		Timestamp:    time.Now().UnixMilli(),
		Operation:    operation,
		EvaluationID: evaluationID,
		Filter:       f,
		Record:       record,
		Output:       result,
		Duration:     &duration,
	})
	return result, nil
}

// Match wraps the matcher's Match method with event emission.
func (e *EventEmittingMatcher) Match(ctx context.Context, f Filter, record Record) (bool, error) {
	result, err := e.withEventEmission(
		"match",
		MatchStart,
		MatchSuccess,
		MatchFailed,
		&f,
		record,
		func() (any, error) {
			return e.matcher.Match(ctx, f, record)
		},
	)
	if err != nil {
		return false, err
	}
	return result.(bool), nil
}

// Compile wraps the matcher's Compile method with event emission.
func (e *EventEmittingMatcher) Compile(f Filter) (predicate.Predicate[Record], error) {
	result, err := e.withEventEmission(
		"compile",
		CompileStart,
		CompileSuccess,
		CompileFailed,
		&f,
		nil,
		func() (any, error) {
			return e.matcher.Compile(f)
		},
	)
	if err != nil {
		return nil, err
	}
	return result.(predicate.Predicate[Record]), nil
}
