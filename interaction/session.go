// File: session.go
// Role: Session state machine: modes, link gesture, drag handling, path queries.
// Concurrency:
//   - A Session is driven by one event loop and is not safe for concurrent use.
//     The underlying core.Graph is, so other goroutines may still query it.

package interaction

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/pointfield/core"
	"github.com/katalvlaran/pointfield/dijkstra"
)

// linkState is the connect gesture: idle, or awaiting the second endpoint.
type linkState struct {
	awaiting bool
	first    string
}

// Session holds the transient editing state for one user.
type Session struct {
	g           *core.Graph
	mode        Mode
	link        linkState
	locked      map[string]bool
	dragging    string // "" when no drag is active
	hitRadius   float64
	maxDistance float64
	log         zerolog.Logger
}

// NewSession creates an idle session editing g.
//
// Errors:
//   - ErrNilGraph: g is nil.
//   - ErrBadRadius: WithHitRadius got a non-positive or non-finite value.
func NewSession(g *core.Graph, opts ...Option) (*Session, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	s := &Session{
		g:         g,
		locked:    make(map[string]bool),
		hitRadius: DefaultHitRadius,
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.hitRadius <= 0 || math.IsNaN(s.hitRadius) || math.IsInf(s.hitRadius, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrBadRadius, s.hitRadius)
	}

	return s, nil
}

// Graph returns the edited graph.
func (s *Session) Graph() *core.Graph { return s.g }

// Mode returns the current mode.
func (s *Session) Mode() Mode { return s.mode }

// SetMode switches to m and returns the resulting mode.
//
// Selecting add or link while already in it returns to idle. Any mode change
// abandons a half-finished link gesture and ends an active drag.
func (s *Session) SetMode(m Mode) Mode {
	next := m
	if m == s.mode && m.toggles() {
		next = ModeIdle
	}
	if next != s.mode {
		s.link = linkState{}
		s.dragging = ""
		s.log.Debug().Stringer("from", s.mode).Stringer("to", next).Msg("mode changed")
		s.mode = next
	}

	return next
}

// Pending returns the first endpoint of an unfinished link gesture.
func (s *Session) Pending() (string, bool) {
	return s.link.first, s.link.awaiting
}

// Locked reports whether name is excluded from dragging.
func (s *Session) Locked(name string) bool { return s.locked[name] }

// Hit resolves (x, y) to a point name using the session's hit radius.
func (s *Session) Hit(x, y float64) (string, bool) {
	return HitTest(s.g.AllPoints(), x, y, s.hitRadius)
}

// Click applies a primary click at (x, y) according to the current mode.
//
// Behavior per mode:
//   - idle:   nothing.
//   - add:    AddPoint(x, y) → EventAdded.
//   - edit:   toggle the drag lock of the hit point → EventLockToggled.
//   - delete: DeletePoint on the hit point → EventDeleted with former neighbors.
//   - link:   first hit → EventSelected; second hit on another point →
//     ConnectPoints → EventConnected. A second hit on the same point returns
//     ErrSamePoint and keeps waiting; a failed connect is returned and the
//     gesture starts over.
//
// A click that hits no point returns EventNone in every mode but add.
// Non-finite coordinates are rejected with ErrBadCoordinate in every mode.
func (s *Session) Click(x, y float64) (Event, error) {
	if err := checkCoordinate(x, y); err != nil {
		return Event{Kind: EventNone}, err
	}
	if s.mode == ModeIdle {
		return Event{Kind: EventNone}, nil
	}
	if s.mode == ModeAdd {
		name := s.g.AddPoint(x, y)
		s.log.Info().Str("point", name).Float64("x", x).Float64("y", y).Msg("point added")

		return Event{Kind: EventAdded, Name: name}, nil
	}

	name, ok := s.Hit(x, y)
	if !ok {
		return Event{Kind: EventNone}, nil
	}

	switch s.mode {
	case ModeEdit:
		return s.toggleLock(name), nil
	case ModeDelete:
		return s.deletePoint(name)
	case ModeLink:
		return s.linkClick(name)
	}

	return Event{Kind: EventNone}, nil
}

// toggleLock flips the drag lock of name.
func (s *Session) toggleLock(name string) Event {
	locked := !s.locked[name]
	if locked {
		s.locked[name] = true
	} else {
		delete(s.locked, name)
	}
	s.log.Debug().Str("point", name).Bool("locked", locked).Msg("lock toggled")

	return Event{Kind: EventLockToggled, Name: name, Locked: locked}
}

// deletePoint removes name and drops session state that referred to it.
func (s *Session) deletePoint(name string) (Event, error) {
	removed, err := s.g.DeletePoint(name)
	if err != nil {
		return Event{Kind: EventNone}, err
	}
	delete(s.locked, name)
	if s.dragging == name {
		s.dragging = ""
	}
	if s.link.awaiting && s.link.first == name {
		s.link = linkState{}
	}
	s.log.Info().Str("point", name).Strs("neighbors", removed).Msg("point deleted")

	return Event{Kind: EventDeleted, Name: name, Removed: removed}, nil
}

// linkClick advances the connect gesture with a hit on name.
func (s *Session) linkClick(name string) (Event, error) {
	if !s.link.awaiting {
		s.link = linkState{awaiting: true, first: name}

		return Event{Kind: EventSelected, Name: name}, nil
	}

	first := s.link.first
	if first == name {
		return Event{Kind: EventNone}, fmt.Errorf("%w: %q", ErrSamePoint, name)
	}
	s.link = linkState{}

	if err := s.g.ConnectPoints(first, name); err != nil {
		s.log.Warn().Err(err).Str("a", first).Str("b", name).Msg("link rejected")

		return Event{Kind: EventNone}, err
	}
	s.log.Info().Str("a", first).Str("b", name).Msg("points connected")

	return Event{Kind: EventConnected, Name: first, Other: name}, nil
}

// checkCoordinate rejects positions that are not real numbers.
func checkCoordinate(x, y float64) error {
	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
		return fmt.Errorf("%w: (%v, %v)", ErrBadCoordinate, x, y)
	}

	return nil
}

// CancelLink abandons a half-finished link gesture.
func (s *Session) CancelLink() {
	s.link = linkState{}
}

// DeletePoint removes name outside of a click, e.g. from a typed command,
// and drops every piece of session state that referred to it: its lock, an
// active drag, and a link gesture waiting on it as first endpoint.
func (s *Session) DeletePoint(name string) (Event, error) {
	return s.deletePoint(name)
}

// Connect joins a and b outside of the link gesture. A pending gesture is
// left as it is.
func (s *Session) Connect(a, b string) (Event, error) {
	if err := s.g.ConnectPoints(a, b); err != nil {
		return Event{Kind: EventNone}, err
	}
	s.log.Info().Str("a", a).Str("b", b).Msg("points connected")

	return Event{Kind: EventConnected, Name: a, Other: b}, nil
}

// Press starts dragging the point under (x, y).
//
// Dragging is refused in add and link modes and for locked points; ok is
// false then. The returned name is the point that will follow Drag calls.
//
// Errors:
//   - ErrBadCoordinate: x or y is NaN or infinite.
func (s *Session) Press(x, y float64) (name string, ok bool, err error) {
	if err := checkCoordinate(x, y); err != nil {
		return "", false, err
	}
	if !s.mode.allowsDrag() {
		return "", false, nil
	}
	name, ok = s.Hit(x, y)
	if !ok || s.locked[name] {
		return "", false, nil
	}
	s.dragging = name

	return name, true, nil
}

// Drag moves the pressed point to (x, y). Every incident edge changes
// weight with it; nothing else is updated.
//
// Errors:
//   - ErrNotDragging: no Press is active.
//   - ErrBadCoordinate: x or y is NaN or infinite; the drag stays active.
//   - core.ErrPointNotFound: the point vanished; the drag is ended.
func (s *Session) Drag(x, y float64) error {
	if s.dragging == "" {
		return ErrNotDragging
	}
	if err := checkCoordinate(x, y); err != nil {
		return err
	}
	if err := s.g.MovePoint(s.dragging, x, y); err != nil {
		s.dragging = ""
		return err
	}

	return nil
}

// Release ends the active drag and returns the dragged point.
func (s *Session) Release() (string, bool) {
	name := s.dragging
	s.dragging = ""
	if name == "" {
		return "", false
	}
	if p, err := s.g.Point(name); err == nil {
		s.log.Info().Str("point", name).Float64("x", p.X).Float64("y", p.Y).Msg("point moved")
	}

	return name, true
}

// Dragging returns the point currently being dragged.
func (s *Session) Dragging() (string, bool) {
	return s.dragging, s.dragging != ""
}

// CalculatePath returns the shortest route between source and target as
// point names joined with "-", e.g. "1-4-3".
//
// Errors propagate from dijkstra.ShortestPath: ErrPointNotFound (which also
// matches core.ErrPointNotFound) and ErrNoPath.
func (s *Session) CalculatePath(source, target string) (string, error) {
	var opts []dijkstra.Option
	if s.maxDistance > 0 {
		opts = append(opts, dijkstra.WithMaxDistance(s.maxDistance))
	}
	p, err := dijkstra.ShortestPath(s.g, source, target, opts...)
	if err != nil {
		s.log.Debug().Err(err).Str("source", source).Str("target", target).Msg("path query failed")
		return "", err
	}
	s.log.Debug().Str("source", source).Str("target", target).Float64("distance", p.Distance).Msg("path found")

	return FormatPath(p.Names), nil
}

// FormatPath joins names with "-".
func FormatPath(names []string) string {
	return strings.Join(names, "-")
}

// Explain renders a path error as a short message for the user.
func Explain(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, core.ErrPointNotFound):
		return "point does not exist"
	case errors.Is(err, dijkstra.ErrNoPath):
		return "no path exists"
	default:
		return err.Error()
	}
}
