package itemgen

import "itemgen/internal/sampler"

// Shuffle reorders items by walking them once and, on each coin flip above 0.5,
// putting the item at the front of the output, otherwise at the back.
// This is not a uniform permutation: consecutive front-inserted items come out
// reversed and back-inserted ones keep their relative order.
func Shuffle(src sampler.Source, items []ItemInfo) []ItemInfo {
	var front, back []ItemInfo
	for _, it := range items {
		if src.Float64() > 0.5 {
			front = append(front, it)
		} else {
			back = append(back, it)
		}
	}
	out := make([]ItemInfo, 0, len(items))
	for i := len(front) - 1; i >= 0; i-- {
		out = append(out, front[i])
	}
	return append(out, back...)
}
