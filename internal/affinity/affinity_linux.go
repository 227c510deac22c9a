//go:build linux

package affinity

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// Linux implementation via sched_getaffinity(2)/sched_setaffinity(2) on
// the calling thread (pid 0).

const supported = true

type savedMask struct {
	set unix.CPUSet
}

func currentCPU() (int, bool) {
	var cpu uint32
	if _, _, errno := unix.Syscall(unix.SYS_GETCPU, uintptr(unsafe.Pointer(&cpu)), 0, 0); errno != 0 {
		return 0, false
	}
	return int(cpu), true
}

// pin saves the thread's current mask, then narrows it to one core.
func pin(core int) (savedMask, bool) {
	var prev unix.CPUSet
	if err := unix.SchedGetaffinity(0, &prev); err != nil {
		return savedMask{}, false
	}
	var one unix.CPUSet
	one.Set(core)
	if err := unix.SchedSetaffinity(0, &one); err != nil {
		return savedMask{}, false
	}
	return savedMask{set: prev}, true
}

func restore(m savedMask) bool {
	return unix.SchedSetaffinity(0, &m.set) == nil
}
