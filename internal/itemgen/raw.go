package itemgen

import (
	"fmt"

	"itemgen/internal/sampler"
)

// RawItem is the index-only draw for one item, before any asset is resolved.
type RawItem struct {
	Object int
	Colors []int
}

// GenerateRaw draws count raw items. Object indices come from batched passes over
// the object pool, so an object repeats only across passes. Each item's colors are
// a fresh unique draw from the color pool.
func GenerateRaw(src sampler.Source, count, objectPoolSize, colorsPerItem, colorPoolSize int) ([]RawItem, error) {
	objects, err := sampler.Batched(src, objectPoolSize, count)
	if err != nil {
		return nil, fmt.Errorf("itemgen: objects: %w", err)
	}
	raw := make([]RawItem, len(objects))
	for i, obj := range objects {
		colors, err := sampler.Unique(src, colorPoolSize, colorsPerItem)
		if err != nil {
			return nil, fmt.Errorf("itemgen: colors for item %d: %w", i, err)
		}
		raw[i] = RawItem{Object: obj, Colors: colors}
	}
	return raw, nil
}
