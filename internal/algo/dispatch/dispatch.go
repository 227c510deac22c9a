// Package dispatch compares opcode-dispatch strategies: an if-else
// chain, a dense switch the compiler can lower to a jump table, and an
// explicit multiplier lookup. Opcodes 0..7 multiply the value by
// opcode+1; anything else is invalid and yields 0.
package dispatch

// IfChain dispatches with a sequential if-else chain, worst case eight
// compare-and-branch steps.
//
//go:noinline
func IfChain(opcode uint8, value uint32) uint32 {
	if opcode == 0 {
		return value
	} else if opcode == 1 {
		return value * 2
	} else if opcode == 2 {
		return value * 3
	} else if opcode == 3 {
		return value * 4
	} else if opcode == 4 {
		return value * 5
	} else if opcode == 5 {
		return value * 6
	} else if opcode == 6 {
		return value * 7
	} else if opcode == 7 {
		return value * 8
	}
	return 0
}

// Switch dispatches with a dense switch over the valid opcode range.
//
//go:noinline
func Switch(opcode uint8, value uint32) uint32 {
	switch opcode {
	case 0:
		return value
	case 1:
		return value * 2
	case 2:
		return value * 3
	case 3:
		return value * 4
	case 4:
		return value * 5
	case 5:
		return value * 6
	case 6:
		return value * 7
	case 7:
		return value * 8
	default:
		return 0
	}
}

var multipliers = [8]uint32{1, 2, 3, 4, 5, 6, 7, 8}

// Table dispatches through a multiplier lookup: one bounds check and
// one multiply, no per-opcode branch.
//
//go:noinline
func Table(opcode uint8, value uint32) uint32 {
	if opcode < 8 {
		return value * multipliers[opcode]
	}
	return 0
}
