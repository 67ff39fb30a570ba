package lint

import (
	"cmp"
	"slices"
	"sync"

	"github.com/jfmengels/elm-lint/pkg/rule"
)

// Registry holds a named set of rules, keyed by their declared name.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]rule.Rule
}

// NewRegistry creates an empty rule registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]rule.Rule)}
}

// Register adds r to the registry, replacing any existing rule of the same
// name.
func (reg *Registry) Register(r rule.Rule) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.byName[r.Name()] = r
}

// Get retrieves a rule by its declared name.
func (reg *Registry) Get(name string) (rule.Rule, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	r, ok := reg.byName[name]
	return r, ok
}

// Rules returns every registered rule, sorted by name for deterministic
// output.
func (reg *Registry) Rules() []rule.Rule {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	result := make([]rule.Rule, 0, len(reg.byName))
	for _, r := range reg.byName {
		result = append(result, r)
	}
	slices.SortFunc(result, func(a, b rule.Rule) int {
		return cmp.Compare(a.Name(), b.Name())
	})
	return result
}

// Names returns every registered rule's name, sorted.
func (reg *Registry) Names() []string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	result := make([]string, 0, len(reg.byName))
	for name := range reg.byName {
		result = append(result, name)
	}
	slices.Sort(result)
	return result
}
