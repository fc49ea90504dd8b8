package scroll

import "math"

// ActiveSection returns the id whose section top is closest to the viewport
// top. top reports each section's document offset and false for sections
// not on the page. Ties go to the earlier id. With no ids it returns "";
// when no section is present it returns the first id.
func ActiveSection(ids []string, top func(id string) (float64, bool), viewportTop float64) string {
	if len(ids) == 0 {
		return ""
	}
	best := ids[0]
	bestDist := math.Inf(1)
	for _, id := range ids {
		t, ok := top(id)
		if !ok {
			continue
		}
		if d := math.Abs(t - viewportTop); d < bestDist {
			best, bestDist = id, d
		}
	}
	return best
}
