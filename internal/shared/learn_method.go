// path: internal/shared/learn_method.go
package shared

import "strings"

// LearnMethod classifies how a currently known move was obtained.
type LearnMethod uint8

const (
	LearnEmpty LearnMethod = iota
	LearnNone
	LearnDuplicate
	LearnEmptyInvalid
	LearnUnobtainable
	LearnUnobtainableExpect
	LearnInitial
	LearnLevelUp
	LearnTMHM
	LearnTutor
	LearnSketch
	LearnEggMove
	LearnInheritLevelUp
	LearnSpecial
	LearnSpecialEgg
	LearnShared
	LearnRelearn
	LearnEvolve
	LearnTradeback
)

// IsEggSource reports whether the move was fixed at the creature's origin by
// inheritance rather than learned afterwards.
func (m LearnMethod) IsEggSource() bool {
	switch m {
	case LearnEggMove, LearnInheritLevelUp, LearnSpecialEgg, LearnShared:
		return true
	default:
		return false
	}
}

var learnMethodNames = [...]string{
	LearnEmpty:              "Empty",
	LearnNone:               "None",
	LearnDuplicate:          "Duplicate",
	LearnEmptyInvalid:       "EmptyInvalid",
	LearnUnobtainable:       "Unobtainable",
	LearnUnobtainableExpect: "UnobtainableExpect",
	LearnInitial:            "Initial",
	LearnLevelUp:            "LevelUp",
	LearnTMHM:               "TMHM",
	LearnTutor:              "Tutor",
	LearnSketch:             "Sketch",
	LearnEggMove:            "EggMove",
	LearnInheritLevelUp:     "InheritLevelUp",
	LearnSpecial:            "Special",
	LearnSpecialEgg:         "SpecialEgg",
	LearnShared:             "Shared",
	LearnRelearn:            "Relearn",
	LearnEvolve:             "Evolve",
	LearnTradeback:          "Tradeback",
}

func (m LearnMethod) String() string {
	if int(m) < len(learnMethodNames) {
		return learnMethodNames[m]
	}
	return "?"
}

func ParseLearnMethod(s string) (LearnMethod, bool) {
	needle := nameKey(s)
	if needle == "" {
		return LearnEmpty, false
	}
	for i, name := range learnMethodNames {
		if strings.ToLower(name) == needle {
			return LearnMethod(i), true
		}
	}
	switch needle {
	case "egg":
		return LearnEggMove, true
	case "level", "levelup":
		return LearnLevelUp, true
	case "tm", "tr", "machine":
		return LearnTMHM, true
	}
	return LearnEmpty, false
}

// MoveResult is the verified state of one move slot.
type MoveResult struct {
	Move   Move        `json:"move" yaml:"move"`
	Method LearnMethod `json:"method" yaml:"method"`
}
