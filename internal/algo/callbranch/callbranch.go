// Package callbranch compares a chain of real function calls against
// the same arithmetic fully inlined, measuring CALL/RET and argument
// passing overhead. The helpers carry go:noinline so the compiler
// cannot flatten the "calls" variant into the "inline" one.
package callbranch

//go:noinline
func double(x uint32) uint32 { return x * 2 }

//go:noinline
func addTen(x uint32) uint32 { return x + 10 }

//go:noinline
func square(x uint32) uint32 { return x * x }

// ProcessCalls computes square(addTen(double(x))) through three
// separate non-inlined calls.
//
//go:noinline
func ProcessCalls(x uint32) uint32 {
	return square(addTen(double(x)))
}

// ProcessInline computes the identical result with the arithmetic
// spelled out in one function body.
//
//go:noinline
func ProcessInline(x uint32) uint32 {
	step1 := x * 2
	step2 := step1 + 10
	return step2 * step2
}
