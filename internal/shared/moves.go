// path: internal/shared/moves.go
package shared

import (
	"fmt"
	"strconv"
	"strings"
)

// Move is a move identifier. MoveNone marks an empty move slot.
type Move uint16

const (
	MoveNone Move = 0

	Stomp          Move = 23
	Mimic          Move = 102
	Charm          Move = 204
	Rollout        Move = 205
	AncientPower   Move = 246
	Taunt          Move = 269
	DoubleHit      Move = 458
	DisarmingVoice Move = 574
	BabyDollEyes   Move = 608
	PsyshieldBash  Move = 828
	BarbBarrage    Move = 839
	HyperDrill     Move = 887
	TwinBeam       Move = 888
	RageFist       Move = 889
	DragonCheer    Move = 913
)

var moveNames = map[Move]string{
	Stomp:          "Stomp",
	Mimic:          "Mimic",
	Charm:          "Charm",
	Rollout:        "Rollout",
	AncientPower:   "Ancient Power",
	Taunt:          "Taunt",
	DoubleHit:      "Double Hit",
	DisarmingVoice: "Disarming Voice",
	BabyDollEyes:   "Baby-Doll Eyes",
	PsyshieldBash:  "Psyshield Bash",
	BarbBarrage:    "Barb Barrage",
	HyperDrill:     "Hyper Drill",
	TwinBeam:       "Twin Beam",
	RageFist:       "Rage Fist",
	DragonCheer:    "Dragon Cheer",
}

var moveByKey = func() map[string]Move {
	out := make(map[string]Move, len(moveNames))
	for m, name := range moveNames {
		out[nameKey(name)] = m
	}
	return out
}()

func (m Move) String() string {
	if name, ok := moveNames[m]; ok {
		return name
	}
	if m == MoveNone {
		return "None"
	}
	return fmt.Sprintf("move(%d)", uint16(m))
}

// ParseMove accepts a known move name or a decimal move number.
func ParseMove(s string) (Move, bool) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return MoveNone, false
	}
	if n, err := strconv.ParseUint(trimmed, 10, 16); err == nil {
		return Move(n), true
	}
	m, ok := moveByKey[nameKey(trimmed)]
	return m, ok
}

// MoveList is an ordered set of moves.
type MoveList []Move

func (ml MoveList) Contains(target Move) bool {
	for _, m := range ml {
		if m == target {
			return true
		}
	}
	return false
}

func (ml MoveList) Clone() MoveList {
	if len(ml) == 0 {
		return nil
	}
	out := make(MoveList, len(ml))
	copy(out, ml)
	return out
}

func (ml MoveList) Strings() []string {
	out := make([]string, len(ml))
	for i, m := range ml {
		out[i] = m.String()
	}
	return out
}
