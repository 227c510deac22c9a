// Package algo registers the benchmark payloads and exposes them to the
// CLI through one flat interface.
package algo

import (
	"varbench/internal/algo/callbranch"
	"varbench/internal/algo/dispatch"
	"varbench/internal/algo/dotproduct"
	"varbench/internal/algo/xoroshiro"
	"varbench/internal/engine"
)

// Runner is one benchmark payload: a family of implementation variants
// of the same computation.
type Runner interface {
	Name() string
	Description() string
	Category() string
	// VariantNames lists the variant identifiers, reference first.
	VariantNames() []string
	// Variants builds one Variant per implementation for the given
	// input size, sharing identical seeded input data. Returns nil
	// when the payload is not meaningful at that size.
	Variants(size int, seed uint64) []engine.Variant
	// Verify runs every variant against the reference over a fixed
	// edge-case-bearing input set. A payload whose Verify fails must
	// not have its timings trusted.
	Verify() error
}

// Registry holds the payloads for one run.
type Registry struct {
	runners []Runner
}

func (r *Registry) Register(run Runner) {
	r.runners = append(r.runners, run)
}

func (r *Registry) All() []Runner {
	return r.runners
}

func (r *Registry) Find(name string) (Runner, bool) {
	for _, run := range r.runners {
		if run.Name() == name {
			return run, true
		}
	}
	return nil, false
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.runners))
	for _, run := range r.runners {
		names = append(names, run.Name())
	}
	return names
}

// Default builds the registry with every payload in the repository.
func Default() *Registry {
	r := &Registry{}
	r.Register(dotproduct.Runner{})
	r.Register(xoroshiro.Runner{})
	r.Register(callbranch.Runner{})
	r.Register(dispatch.Runner{})
	return r
}
