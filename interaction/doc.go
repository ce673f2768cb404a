// Package interaction is the headless editing layer of a point field.
//
// A Session receives low-level pointer input (Click, Press, Drag, Release)
// plus mode switches, and translates them into core.Graph mutations:
//
//	mode   click on empty space   click on a point
//	idle   -                      -
//	add    AddPoint               AddPoint
//	edit   -                      toggle drag lock
//	delete -                      DeletePoint
//	link   -                      1st: remember it; 2nd: ConnectPoints
//
// Points are found with HitTest, which maps a position to the nearest point
// name within a radius. The graph never sees positions of clicks or any
// rendering detail, only names.
//
// The link gesture is a two-state machine kept in the Session:
//
//	idle ──hit a──▶ awaiting(a) ──hit b≠a──▶ ConnectPoints(a,b) ──▶ idle
//	                    │  ▲
//	                    └──┘ hit a again: ErrSamePoint
//
// Switching modes resets it. CalculatePath formats routes as "1-4-3".
package interaction
