// path: internal/shared/contexts.go
package shared

import "strings"

// Context identifies the game group a creature's data belongs to. Its
// generation is the data format number.
type Context uint8

const (
	ContextNone Context = iota
	Gen1
	Gen2
	Gen3
	Gen4
	Gen5
	Gen6
	Gen7
	Gen8
	Gen9
	Gen7b
	Gen8a
	Gen8b
	Gen9a
)

// Generation returns the data format generation of the context.
func (c Context) Generation() uint8 {
	switch c {
	case Gen1, Gen2, Gen3, Gen4, Gen5, Gen6, Gen7, Gen8, Gen9:
		return uint8(c)
	case Gen7b:
		return 7
	case Gen8a, Gen8b:
		return 8
	case Gen9a:
		return 9
	default:
		return 0
	}
}

func (c Context) String() string {
	switch c {
	case Gen1:
		return "Gen1"
	case Gen2:
		return "Gen2"
	case Gen3:
		return "Gen3"
	case Gen4:
		return "Gen4"
	case Gen5:
		return "Gen5"
	case Gen6:
		return "Gen6"
	case Gen7:
		return "Gen7"
	case Gen8:
		return "Gen8"
	case Gen9:
		return "Gen9"
	case Gen7b:
		return "Gen7b"
	case Gen8a:
		return "Gen8a"
	case Gen8b:
		return "Gen8b"
	case Gen9a:
		return "Gen9a"
	default:
		return "None"
	}
}

var AllContexts = []Context{
	Gen1, Gen2, Gen3, Gen4, Gen5, Gen6, Gen7, Gen8, Gen9,
	Gen7b, Gen8a, Gen8b, Gen9a,
}

func ParseContext(s string) (Context, bool) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for _, c := range AllContexts {
		if strings.ToLower(c.String()) == needle {
			return c, true
		}
	}
	switch needle {
	case "lgpe":
		return Gen7b, true
	case "pla", "la":
		return Gen8a, true
	case "bdsp":
		return Gen8b, true
	case "sv":
		return Gen9, true
	case "za", "plza":
		return Gen9a, true
	}
	return ContextNone, false
}

func ContextStrings() []string {
	out := make([]string, len(AllContexts))
	for i, c := range AllContexts {
		out[i] = c.String()
	}
	return out
}
