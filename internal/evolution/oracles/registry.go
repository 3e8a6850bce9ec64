// path: internal/evolution/oracles/registry.go
package oracles

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/jonklee99/PKHeX-Gengar/internal/evolution"
	"github.com/jonklee99/PKHeX-Gengar/internal/shared"
)

// Config carries the settings a factory may need. Unused fields are ignored.
type Config struct {
	// LearnsetPath points at a YAML learnset file.
	LearnsetPath string
	// Learnsets is an inline YAML learnset document, used when LearnsetPath is empty.
	Learnsets []byte
	// Moves lists moves that are always considered knowable.
	Moves []shared.Move
}

// Factory constructs a move oracle from configuration.
type Factory func(Config) (evolution.Oracle, error)

var (
	registryMu sync.RWMutex
	registry   map[string]Factory

	// ErrDuplicateRegistration indicates a name already has an oracle factory.
	ErrDuplicateRegistration = errors.New("oracles: factory already registered")
	// ErrNilFactory indicates a registration attempt provided a nil constructor.
	ErrNilFactory = errors.New("oracles: nil oracle factory")
	// ErrInvalidName indicates an empty oracle name.
	ErrInvalidName = errors.New("oracles: invalid oracle name")
	// ErrUnknownOracle indicates no factory has been registered under the name.
	ErrUnknownOracle = errors.New("oracles: oracle not registered")
	// ErrNoLearnsetSource indicates the learnset oracle was given neither a file nor inline data.
	ErrNoLearnsetSource = errors.New("oracles: learnset oracle needs a learnset file or inline data")
	// ErrNilOracle indicates a factory returned a nil oracle.
	ErrNilOracle = errors.New("oracles: factory produced nil oracle")
)

// Register associates a name with an oracle factory. The function is safe
// for concurrent use.
func Register(name string, ctor Factory) error {
	if name == "" {
		return ErrInvalidName
	}
	if ctor == nil {
		return ErrNilFactory
	}

	registryMu.Lock()
	defer registryMu.Unlock()
	if registry == nil {
		registry = make(map[string]Factory)
	}
	if _, exists := registry[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateRegistration, name)
	}
	registry[name] = ctor
	return nil
}

// New creates an oracle using the factory registered under name.
func New(name string, cfg Config) (evolution.Oracle, error) {
	registryMu.RLock()
	ctor := registry[name]
	registryMu.RUnlock()

	if ctor == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOracle, name)
	}

	oracle, err := ctor(cfg)
	if err != nil {
		return nil, fmt.Errorf("oracle %s: %w", name, err)
	}
	if oracle == nil {
		return nil, fmt.Errorf("%w: %s", ErrNilOracle, name)
	}
	return oracle, nil
}

// Names returns the registered oracle names in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
