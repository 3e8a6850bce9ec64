package evolution

import "github.com/jonklee99/PKHeX-Gengar/internal/shared"

// IsMoveSlotAvailable reports whether a required evolution move could have
// been forgotten since. Moves inherited through an egg were fixed at origin,
// so at least one current slot must hold something learned later.
func IsMoveSlotAvailable(moves []shared.MoveResult) bool {
	for _, m := range moves {
		if !m.Method.IsEggSource() {
			return true
		}
	}
	return false
}
