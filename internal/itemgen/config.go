package itemgen

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration matches every *InvalidConfigurationError with errors.Is.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// InvalidConfigurationError reports a generation request that cannot be satisfied.
type InvalidConfigurationError struct {
	Field  string
	Reason string
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("itemgen: invalid %s: %s", e.Field, e.Reason)
}

func (e *InvalidConfigurationError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}

// Config is one generation request.
// ThiefCount items get no model, ExtraModelsCount items get no painting.
// Seed == 0 uses a time-based seed.
type Config struct {
	Count            int   `json:"count"`
	ColorsForEach    int   `json:"colors_for_each"`
	ThiefCount       int   `json:"thief_count"`
	ExtraModelsCount int   `json:"extra_models_count"`
	Seed             int64 `json:"seed,omitempty"`
}

// Validate checks cfg against the sizes of the color and object pools.
func (c Config) Validate(colorPoolSize, objectPoolSize int) error {
	invalid := func(field, format string, args ...any) error {
		return &InvalidConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
	}
	switch {
	case c.Count < 0:
		return invalid("count", "%d is negative", c.Count)
	case c.ColorsForEach < 0:
		return invalid("colors_for_each", "%d is negative", c.ColorsForEach)
	case c.ThiefCount < 0:
		return invalid("thief_count", "%d is negative", c.ThiefCount)
	case c.ExtraModelsCount < 0:
		return invalid("extra_models_count", "%d is negative", c.ExtraModelsCount)
	case c.ColorsForEach > colorPoolSize:
		return invalid("colors_for_each", "%d exceeds color pool of %d", c.ColorsForEach, colorPoolSize)
	case c.ThiefCount+c.ExtraModelsCount > c.Count:
		return invalid("thief_count", "%d thieves + %d extra models exceed count %d", c.ThiefCount, c.ExtraModelsCount, c.Count)
	case c.Count > 0 && objectPoolSize == 0:
		return invalid("count", "%d items requested from an empty object pool", c.Count)
	}
	return nil
}
