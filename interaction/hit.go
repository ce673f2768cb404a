// File: hit.go
// Role: Resolve a position on the plane to the name of the point drawn there.

package interaction

import (
	"github.com/maruel/natural"

	"github.com/katalvlaran/pointfield/core"
)

// HitTest returns the point nearest to (x, y) whose distance is at most radius.
//
// Points at exactly the same distance are resolved by natural name order, so
// the result never depends on map iteration order.
//
// Complexity: O(V).
func HitTest(points map[string]core.Point, x, y, radius float64) (string, bool) {
	at := core.Point{X: x, Y: y}
	best, bestDist := "", radius
	found := false
	for name, p := range points {
		d := core.Distance(at, p)
		if !(d <= radius) { // also skips NaN distances
			continue
		}
		if !found || d < bestDist || (d == bestDist && natural.Less(name, best)) {
			best, bestDist, found = name, d, true
		}
	}

	return best, found
}
