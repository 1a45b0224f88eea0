package builder

import (
	"fmt"
	"sort"
)

// Fixture names accepted by Named.
const (
	FixtureTriangle  = "triangle"
	FixtureFunicular = "funicular"
	FixtureTruss     = "truss"
	FixtureRing      = "ring"
)

var named = map[string]func(size int) Constructor{
	FixtureTriangle:  func(int) Constructor { return Triangle() },
	FixtureFunicular: Funicular,
	FixtureTruss:     Truss,
	FixtureRing:      Ring,
}

// Named returns the constructor registered under name. size is n for
// funicular and ring, the panel count for truss, and ignored for triangle.
func Named(name string, size int) (Constructor, error) {
	mk, ok := named[name]
	if !ok {
		return nil, fmt.Errorf("builder: fixture %q (want one of %v): %w", name, FixtureNames(), ErrOptionViolation)
	}

	return mk(size), nil
}

// FixtureNames lists the names accepted by Named, sorted.
func FixtureNames() []string {
	out := make([]string, 0, len(named))
	for k := range named {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
