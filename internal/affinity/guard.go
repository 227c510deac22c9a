// Package affinity pins the calling thread to a single CPU core so
// measurements are not disturbed by cross-core migration.
//
// Pinning is scope-bound: a Guard narrows the thread's affinity mask on
// acquisition and restores the previously saved mask on Release. Each
// guard owns its own saved mask, so nested guards released in LIFO
// order behave correctly. On platforms without a real affinity API the
// guard is a no-op that reports itself as not pinned.
//
// Callers must hold runtime.LockOSThread for the guard's lifetime;
// affinity applies to the OS thread, not the goroutine.
package affinity

// Guard holds a pinned-core claim and the affinity mask to restore.
type Guard struct {
	core     int
	pinned   bool
	released bool
	saved    savedMask
}

// Pin pins the calling thread to the core it is currently running on,
// falling back to core 0 when the current core cannot be determined.
func Pin() *Guard {
	core, ok := currentCPU()
	if !ok {
		core = 0
	}
	return PinTo(core)
}

// PinTo pins the calling thread to a specific core.
func PinTo(core int) *Guard {
	saved, ok := pin(core)
	return &Guard{core: core, pinned: ok, saved: saved}
}

// Core returns the core the guard pinned to. ok is false when pinning
// was unavailable or failed.
func (g *Guard) Core() (core int, ok bool) {
	return g.core, g.pinned
}

// Pinned reports whether the thread is actually pinned by this guard.
func (g *Guard) Pinned() bool {
	return g.pinned && !g.released
}

// Release restores the affinity mask saved when the guard was created.
// It is idempotent; only the first call restores. Returns true when the
// original mask was restored.
func (g *Guard) Release() bool {
	if g.released {
		return false
	}
	g.released = true
	if !g.pinned {
		return false
	}
	return restore(g.saved)
}

// Supported reports whether this platform has a real affinity API.
func Supported() bool {
	return supported
}
