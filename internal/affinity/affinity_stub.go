//go:build !linux

package affinity

// No-op implementation for platforms without per-thread core pinning
// (macOS only offers affinity hints; others vary). Guards degrade to
// "not pinned" rather than failing, and the engine keeps running.

const supported = false

type savedMask struct{}

func currentCPU() (int, bool) {
	return 0, false
}

func pin(core int) (savedMask, bool) {
	return savedMask{}, false
}

func restore(savedMask) bool {
	return false
}
