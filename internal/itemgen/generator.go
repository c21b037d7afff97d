package itemgen

import (
	"fmt"

	"itemgen/internal/logger"
	"itemgen/internal/sampler"
)

// Generator turns a Config into a shuffled batch of items using one set of pools.
// It is not safe for concurrent use with a shared Source.
type Generator struct {
	pools Pools
	log   *logger.Logger
}

// New returns a Generator over pools. log may be nil.
func New(pools Pools, log *logger.Logger) *Generator {
	return &Generator{pools: pools, log: log}
}

// Generate seeds a source from cfg.Seed and runs GenerateFrom.
func (g *Generator) Generate(cfg Config) ([]ItemInfo, error) {
	return g.GenerateFrom(sampler.NewSource(cfg.Seed), cfg)
}

// GenerateFrom validates cfg, draws raw items, resolves them and shuffles the
// result. It returns either all cfg.Count items or an error.
func (g *Generator) GenerateFrom(src sampler.Source, cfg Config) ([]ItemInfo, error) {
	if err := cfg.Validate(g.pools.ColorCount(), g.pools.ObjectCount()); err != nil {
		return nil, err
	}
	raw, err := GenerateRaw(src, cfg.Count, g.pools.ObjectCount(), cfg.ColorsForEach, g.pools.ColorCount())
	if err != nil {
		return nil, err
	}
	items, err := Assign(g.pools, raw, cfg.ThiefCount, cfg.ExtraModelsCount)
	if err != nil {
		g.log.Logf("itemgen: generation failed: %v", err)
		return nil, err
	}
	items = Shuffle(src, items)
	s := Summarize(items)
	g.log.Logf("itemgen: generated %d items (%d full, %d thieves, %d extra models)", s.Total, s.Full, s.Thieves, s.ExtraModels)
	return items, nil
}

// Sink receives finished items, e.g. to place them in a scene.
type Sink interface {
	Place(item ItemInfo) error
}

// Deliver hands items to sink one at a time and stops at the first error.
func Deliver(items []ItemInfo, sink Sink) error {
	for i, it := range items {
		if err := sink.Place(it); err != nil {
			return fmt.Errorf("itemgen: place item %d: %w", i, err)
		}
	}
	return nil
}

// Summary counts items by category.
type Summary struct {
	Total       int
	Full        int
	Thieves     int
	ExtraModels int
}

func Summarize(items []ItemInfo) Summary {
	s := Summary{Total: len(items)}
	for _, it := range items {
		switch {
		case it.IsThief():
			s.Thieves++
		case it.IsExtraModel():
			s.ExtraModels++
		default:
			s.Full++
		}
	}
	return s
}
