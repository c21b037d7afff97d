package sampler

import (
	"errors"
	"fmt"
)

// ErrSampling is returned when a draw cannot be satisfied from its pool.
var ErrSampling = errors.New("sampler: request cannot be satisfied")

// Unique draws count distinct indices in [0, poolSize). Each draw is uniform over
// the whole pool and rejected if already taken, so the result is in acceptance
// order, not sorted.
func Unique(src Source, poolSize, count int) ([]int, error) {
	if poolSize < 0 || count < 0 {
		return nil, fmt.Errorf("%w: negative pool %d or count %d", ErrSampling, poolSize, count)
	}
	if count > poolSize {
		return nil, fmt.Errorf("%w: %d unique values from a pool of %d", ErrSampling, count, poolSize)
	}
	out := make([]int, 0, count)
	seen := make(map[int]struct{}, count)
	for len(out) < count {
		idx := src.Intn(poolSize)
		if _, ok := seen[idx]; ok {
			continue
		}
		seen[idx] = struct{}{}
		out = append(out, idx)
	}
	return out, nil
}

// BatchSizes splits total into passes of at most poolSize. Every entry but the
// last is poolSize; the last holds the remainder. There is always at least one
// entry, so total == 0 yields [0].
func BatchSizes(poolSize, total int) ([]int, error) {
	if total < 0 {
		return nil, fmt.Errorf("%w: negative total %d", ErrSampling, total)
	}
	if total == 0 {
		return []int{0}, nil
	}
	if poolSize <= 0 {
		return nil, fmt.Errorf("%w: %d values from an empty pool", ErrSampling, total)
	}
	sizes := make([]int, 0, (total+poolSize-1)/poolSize)
	for remaining := total; remaining > 0; remaining -= poolSize {
		sizes = append(sizes, min(poolSize, remaining))
	}
	return sizes, nil
}

// Batched returns total indices in [0, poolSize), drawn one batch at a time.
// Values are distinct within a batch but may repeat across batches.
func Batched(src Source, poolSize, total int) ([]int, error) {
	sizes, err := BatchSizes(poolSize, total)
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, total)
	for _, n := range sizes {
		batch, err := Unique(src, poolSize, n)
		if err != nil {
			return nil, err
		}
		out = append(out, batch...)
	}
	return out, nil
}
