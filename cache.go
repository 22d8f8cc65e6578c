package nnf

import "sync"

// nodeCache holds lazily-computed, per-node results that are memoized so
// that repeated queries on a heavily-shared DAG don't
// recompute structural properties exponentially. Each field is guarded by
// its own sync.Once so concurrent readers never block on a query they
// didn't ask for, and a Node is safe to query from multiple goroutines at
// once (Node is immutable once built, so there is nothing else to
// synchronize).
type nodeCache struct {
	sizeOnce sync.Once
	size     int

	varsOnce sync.Once
	vars     map[string]struct{}

	decomposableOnce sync.Once
	decomposable     bool

	deterministicOnce sync.Once
	deterministic     bool

	smoothOnce sync.Once
	smooth     bool

	flatOnce sync.Once
	flat     bool

	cnfOnce sync.Once
	isCNF   bool

	dnfOnce sync.Once
	isDNF   bool

	modsOnce sync.Once
	isMODS   bool
}

// memoInt computes fn once per cache slot and remembers the result.
func memoInt(once *sync.Once, slot *int, fn func() int) int {
	once.Do(func() { *slot = fn() })
	return *slot
}

func memoBool(once *sync.Once, slot *bool, fn func() bool) bool {
	once.Do(func() { *slot = fn() })
	return *slot
}

func memoVars(once *sync.Once, slot *map[string]struct{}, fn func() map[string]struct{}) map[string]struct{} {
	once.Do(func() { *slot = fn() })
	return *slot
}
