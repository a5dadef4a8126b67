package ttable_test

import (
	"testing"

	"github.com/katalvlaran/revlogic/ttable"
	"github.com/stretchr/testify/assert"
)

func TestIdentity(t *testing.T) {
	tt := ttable.Identity(2)
	assert.Equal(t, ttable.TruthTable{0, 1, 2, 3}, tt)
	assert.True(t, tt.IsIdentity())
	assert.True(t, tt.IsPermutation())
	assert.Equal(t, 2, tt.BitWidth())
}

func TestIsPermutation(t *testing.T) {
	assert.True(t, ttable.TruthTable{1, 0, 3, 2}.IsPermutation())
	assert.False(t, ttable.TruthTable{0, 0, 2, 3}.IsPermutation()) // duplicate output
	assert.False(t, ttable.TruthTable{0, 1, 2, 4}.IsPermutation()) // out of range
}

func TestCloneIsIndependent(t *testing.T) {
	orig := ttable.TruthTable{0, 1, 2, 3}
	clone := orig.Clone()
	clone[0] = 99
	assert.Equal(t, uint64(0), orig[0])
}

func TestBitWidthNonPowerOfTwo(t *testing.T) {
	assert.Equal(t, -1, ttable.TruthTable{0, 1, 2}.BitWidth())
}
