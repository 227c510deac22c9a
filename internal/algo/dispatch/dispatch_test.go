package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidOpcodes(t *testing.T) {
	// Opcode n multiplies by n+1.
	for op := uint8(0); op < 8; op++ {
		want := uint32(12345) * uint32(op+1)
		assert.Equal(t, want, IfChain(op, 12345), "if-chain opcode %d", op)
		assert.Equal(t, want, Switch(op, 12345), "switch opcode %d", op)
		assert.Equal(t, want, Table(op, 12345), "table opcode %d", op)
	}
}

func TestInvalidOpcodes(t *testing.T) {
	for _, op := range []uint8{8, 9, 100, 255} {
		assert.Equal(t, uint32(0), IfChain(op, 12345), "if-chain opcode %d", op)
		assert.Equal(t, uint32(0), Switch(op, 12345), "switch opcode %d", op)
		assert.Equal(t, uint32(0), Table(op, 12345), "table opcode %d", op)
	}
}

func TestVariantsAgreeAcrossOpcodeSpace(t *testing.T) {
	values := []uint32{0, 1, 12345, 0x7FFFFFFF, 0xFFFFFFFF}
	for op := 0; op < 256; op++ {
		opcode := uint8(op)
		for _, value := range values {
			want := IfChain(opcode, value)
			require.Equal(t, want, Switch(opcode, value), "switch opcode=%d value=%d", opcode, value)
			require.Equal(t, want, Table(opcode, value), "table opcode=%d value=%d", opcode, value)
		}
	}
}

func TestRunnerVerify(t *testing.T) {
	assert.NoError(t, Runner{}.Verify())
}

func TestRunnerResultSamplesAgree(t *testing.T) {
	vs := Runner{}.Variants(256, 3)
	require.Len(t, vs, 3)

	_, ref, ok := vs[0].RunTrial()
	require.True(t, ok)
	for _, v := range vs[1:] {
		_, got, ok := v.RunTrial()
		require.True(t, ok)
		assert.Equal(t, ref, got, "variant %s", v.Name())
	}
}
