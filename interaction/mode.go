// File: mode.go
// Role: Editing modes of an interactive session and their textual names.

package interaction

import "fmt"

// Mode selects what a click on the plane does.
type Mode int

const (
	// ModeIdle ignores clicks; dragging is allowed.
	ModeIdle Mode = iota
	// ModeAdd places a new point at every click.
	ModeAdd
	// ModeEdit toggles the drag lock of the clicked point.
	ModeEdit
	// ModeDelete removes the clicked point and its edges.
	ModeDelete
	// ModeLink connects two points clicked one after the other.
	ModeLink
)

var modeNames = [...]string{
	ModeIdle:   "idle",
	ModeAdd:    "add",
	ModeEdit:   "edit",
	ModeDelete: "delete",
	ModeLink:   "link",
}

// String returns the lower-case mode name.
func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}

	return modeNames[m]
}

// ParseMode is the inverse of Mode.String.
func ParseMode(s string) (Mode, error) {
	for i, name := range modeNames {
		if name == s {
			return Mode(i), nil
		}
	}

	return ModeIdle, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// allowsDrag reports whether points may be dragged in m.
func (m Mode) allowsDrag() bool {
	return m != ModeAdd && m != ModeLink
}

// toggles reports whether selecting m while already in m returns to idle.
func (m Mode) toggles() bool {
	return m == ModeAdd || m == ModeLink
}
