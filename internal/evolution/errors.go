// path: internal/evolution/errors.go
package evolution

import "errors"

var (
	// ErrInvalidBranchSpecies indicates a species outside the encryption-constant branch set.
	ErrInvalidBranchSpecies = errors.New("evolution: species has no encryption constant branch")
	// ErrInvalidRuleTable indicates the move-evolution table failed validation.
	ErrInvalidRuleTable = errors.New("evolution: invalid rule table")
	// ErrNilOracle indicates a validator was built without a move oracle.
	ErrNilOracle = errors.New("evolution: nil move oracle")
	// ErrIncompleteInput indicates a creature or encounter missing a field the check depends on.
	ErrIncompleteInput = errors.New("evolution: incomplete input")
	// ErrNilPruner indicates a validator was built without a history pruner.
	ErrNilPruner = errors.New("evolution: nil history pruner")
)
