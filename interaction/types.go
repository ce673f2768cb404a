// Package interaction turns pointer gestures on a plane into calls on a
// core.Graph. It owns every piece of transient UI state (current mode,
// the first endpoint of an unfinished link, per-point drag locks, the
// point being dragged) so the graph itself only ever holds points and edges.
//
// Nothing is rendered here. Each gesture returns an Event describing what
// changed so a renderer can redraw just that part.
package interaction

import (
	"errors"
	"math"

	"github.com/rs/zerolog"
)

// Sentinel errors for session operations.
var (
	// ErrNilGraph is returned by NewSession for a nil graph.
	ErrNilGraph = errors.New("interaction: graph is nil")

	// ErrBadRadius indicates a non-positive or non-finite hit radius.
	ErrBadRadius = errors.New("interaction: hit radius must be positive and finite")

	// ErrUnknownMode is returned by ParseMode.
	ErrUnknownMode = errors.New("interaction: unknown mode")

	// ErrSamePoint is returned when the second click of a link gesture lands
	// on the first endpoint. The gesture keeps waiting for another point.
	ErrSamePoint = errors.New("interaction: points coincide")

	// ErrBadCoordinate is returned for a NaN or infinite gesture position.
	ErrBadCoordinate = errors.New("interaction: coordinate must be a finite number")

	// ErrNotDragging is returned by Drag when no point is being dragged.
	ErrNotDragging = errors.New("interaction: no drag in progress")
)

// DefaultHitRadius matches the drawn radius of a point.
const DefaultHitRadius = 8.0

// EventKind tells a renderer what a gesture changed.
type EventKind int

const (
	// EventNone means nothing changed (a click on empty space, idle mode, ...).
	EventNone EventKind = iota
	// EventAdded: a point named Name was created.
	EventAdded
	// EventSelected: Name was picked as the first endpoint of a link.
	EventSelected
	// EventConnected: the edge {Name, Other} was created.
	EventConnected
	// EventDeleted: Name was removed together with its edges to Removed.
	EventDeleted
	// EventLockToggled: Name's drag lock is now Locked.
	EventLockToggled
)

var eventNames = [...]string{
	EventNone:        "none",
	EventAdded:       "added",
	EventSelected:    "selected",
	EventConnected:   "connected",
	EventDeleted:     "deleted",
	EventLockToggled: "lock-toggled",
}

// String returns the lower-case event name.
func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return "unknown"
	}

	return eventNames[k]
}

// Event is the outcome of one click.
type Event struct {
	Kind    EventKind `json:"kind"`
	Name    string    `json:"name,omitempty"`
	Other   string    `json:"other,omitempty"`
	Removed []string  `json:"removed,omitempty"`
	Locked  bool      `json:"locked,omitempty"`
}

// Option configures a Session.
type Option func(*Session)

// WithHitRadius sets how far from a point a click still selects it.
// Invalid values make NewSession fail with ErrBadRadius.
func WithHitRadius(r float64) Option {
	return func(s *Session) {
		s.hitRadius = r
	}
}

// WithMaxPathDistance caps CalculatePath; zero or less means no cap.
func WithMaxPathDistance(d float64) Option {
	return func(s *Session) {
		if d <= 0 || math.IsNaN(d) {
			d = 0
		}
		s.maxDistance = d
	}
}

// WithLogger attaches a zerolog logger for gesture events.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) {
		s.log = l
	}
}
