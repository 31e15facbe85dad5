//go:build !profile

package profiler

import "time"

// Stubbed no-op versions when the "profile" build tag is not set.

type Scope struct {
	Name  string
	Count int
	Total time.Duration
	Max   time.Duration
}

func (s Scope) Mean() time.Duration { return 0 }

const Enabled = false

func Start(name string) func() { return func() {} }

func Snapshot() []Scope { return nil }

func Reset() {}
