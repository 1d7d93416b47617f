package shell

import (
	"sort"
	"sync"
)

// NewAliases creates an empty alias registry.
func NewAliases() *Aliases {
	return &Aliases{}
}

// Aliases maps alias names to their expansion text. It is safe for
// concurrent use; a blocked caller yields its thread to the scheduler
// rather than spinning.
type Aliases struct {
	mu      sync.RWMutex
	aliases map[string]string
}

// Get returns the expansion text for name.
func (a *Aliases) Get(name string) (string, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	text, ok := a.aliases[name]
	return text, ok
}

// Set stores an alias and returns the expansion it replaced, if any.
func (a *Aliases) Set(name, text string) (string, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.aliases == nil {
		a.aliases = make(map[string]string)
	}
	prev, ok := a.aliases[name]
	a.aliases[name] = text
	return prev, ok
}

// Names returns every alias name in sorted order.
func (a *Aliases) Names() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	var names []string
	for name := range a.aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
