package itemgen

import "fmt"

// Assign resolves raw items in order. The first thiefCount items lose their model.
// The extra-model counter is only looked at for items that were not thieves, so the
// next extraModelsCount items after the thieves lose their painting and no item
// is counted against both.
func Assign(pools Pools, raw []RawItem, thiefCount, extraModelsCount int) ([]ItemInfo, error) {
	thieves, extras := thiefCount, extraModelsCount
	items := make([]ItemInfo, 0, len(raw))
	for i, r := range raw {
		colors, err := resolveColors(pools, r.Colors)
		if err != nil {
			return nil, fmt.Errorf("itemgen: item %d: %w", i, err)
		}

		thief := thieves > 0
		extra := !thief && extras > 0

		item := ItemInfo{Object: r.Object}
		if !thief {
			if item.Model, err = instantiate(pools, r.Object, colors); err != nil {
				return nil, fmt.Errorf("itemgen: item %d model: %w", i, err)
			}
		}
		if !extra {
			if item.Painting, err = paint(pools, r.Object, colors); err != nil {
				return nil, fmt.Errorf("itemgen: item %d painting: %w", i, err)
			}
		}

		if thief {
			thieves--
		}
		if extra {
			extras--
		}
		items = append(items, item)
	}
	return items, nil
}
