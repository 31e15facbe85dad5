//go:build profile

package profiler

import (
	"sort"
	"sync"
	"time"
)

// Scope aggregates every timed span recorded under one name.
type Scope struct {
	Name  string
	Count int
	Total time.Duration
	Max   time.Duration
}

// Mean is Total/Count.
func (s Scope) Mean() time.Duration {
	if s.Count == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Count)
}

var (
	mu     sync.Mutex
	scopes = map[string]*Scope{}
)

// Enabled reports whether the binary was built with -tags profile.
const Enabled = true

// Start begins a scope and returns an end func to be deferred.
func Start(name string) func() {
	begin := time.Now()
	return func() {
		d := time.Since(begin)
		mu.Lock()
		sc, ok := scopes[name]
		if !ok {
			sc = &Scope{Name: name}
			scopes[name] = sc
		}
		sc.Count++
		sc.Total += d
		if d > sc.Max {
			sc.Max = d
		}
		mu.Unlock()
	}
}

// Snapshot returns all scopes, most expensive total first.
func Snapshot() []Scope {
	mu.Lock()
	out := make([]Scope, 0, len(scopes))
	for _, sc := range scopes {
		out = append(out, *sc)
	}
	mu.Unlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Total > out[j].Total })
	return out
}

func Reset() {
	mu.Lock()
	clear(scopes)
	mu.Unlock()
}
