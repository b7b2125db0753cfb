package crypto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvertSelector_Table(t *testing.T) {
	want := [32]uint8{
		0, 1, 2, 4, 3, 5, 6, 7, 12, 18, 13, 19, 8, 10, 14, 20,
		16, 22, 9, 11, 15, 21, 17, 23, 0, 1, 2, 4, 3, 5, 6, 7,
	}
	for sv := range uint8(32) {
		assert.Equal(t, want[sv], InvertSelector(sv), "selector %d", sv)
	}
}

func TestBlockPosition_Permutations(t *testing.T) {
	seen := make(map[[BlockCount]uint8]int)
	for sv := range 24 {
		perm := [BlockCount]uint8(blockPosition[sv*BlockCount:])
		var present [BlockCount]bool
		for _, p := range perm {
			present[p] = true
		}
		assert.Equal(t, [BlockCount]bool{true, true, true, true}, present, "selector %d is not a permutation", sv)
		prev, dup := seen[perm]
		assert.False(t, dup, "selector %d duplicates %d", sv, prev)
		seen[perm] = sv
	}
	for sv := 24; sv < 32; sv++ {
		assert.Equal(t, blockPosition[(sv-24)*BlockCount:(sv-23)*BlockCount], blockPosition[sv*BlockCount:(sv+1)*BlockCount])
	}
}

func TestShuffle_Inverse(t *testing.T) {
	const blockSize = 8
	orig := make([]byte, 8+BlockCount*blockSize)
	for i := range orig {
		orig[i] = byte(i)
	}

	for sv := range uint8(32) {
		data := bytes.Clone(orig)
		Shuffle(data, 8, blockSize, sv)
		Unshuffle(data, 8, blockSize, sv)
		require.Equal(t, orig, data, "shuffle/unshuffle selector %d", sv)

		Unshuffle(data, 8, blockSize, sv)
		Shuffle(data, 8, blockSize, sv)
		require.Equal(t, orig, data, "unshuffle/shuffle selector %d", sv)
	}
}

func TestUnshuffle_BlockOrder(t *testing.T) {
	// selector 9 = {3,0,1,2}: slot 0 takes block 3, slot 1 takes block 0, ...
	data := []byte{0xAA, 0, 0, 1, 1, 2, 2, 3, 3}
	Unshuffle(data, 1, 2, 9)
	assert.Equal(t, []byte{0xAA, 3, 3, 0, 0, 1, 1, 2, 2}, data)
}

func TestShuffleSelector(t *testing.T) {
	assert.Equal(t, uint8(0), ShuffleSelector(0x00001FFF))
	assert.Equal(t, uint8(1), ShuffleSelector(0x00002000))
	assert.Equal(t, uint8(31), ShuffleSelector(0x0003E000))
	assert.Equal(t, uint8(0), ShuffleSelector(0xFFFC1FFF))
}
