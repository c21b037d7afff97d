package assets

import (
	"errors"
	"fmt"
)

// ErrMissingAsset matches every *MissingAssetError with errors.Is.
var ErrMissingAsset = errors.New("missing asset")

// MissingAssetError reports a pool slot that could not be resolved.
type MissingAssetError struct {
	Kind   string // "color", "template", "texture", "slot"
	Index  int
	Name   string
	Detail string
}

func (e *MissingAssetError) Error() string {
	msg := fmt.Sprintf("assets: missing %s %d", e.Kind, e.Index)
	if e.Name != "" {
		msg += " (" + e.Name + ")"
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *MissingAssetError) Is(target error) bool {
	return target == ErrMissingAsset
}
