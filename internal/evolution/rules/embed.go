// Package rules carries the move-evolution table compiled into the binary.
package rules

import (
	_ "embed"
)

// MoveEvolutions is the raw YAML of move_evolutions.yaml.
//
//go:embed move_evolutions.yaml
var MoveEvolutions []byte
