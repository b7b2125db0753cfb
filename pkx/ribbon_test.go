package pkx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRibbon_Placement(t *testing.T) {
	tests := []struct {
		gen    Generation
		ribbon Ribbon
		off    int
		bit    uint8
	}{
		{gen: Gen9, ribbon: RibbonChampionKalos, off: 0x34, bit: 0},
		{gen: Gen9, ribbon: RibbonMemoryContest, off: 0x38, bit: 5},
		{gen: Gen9, ribbon: RibbonMarkSandstorm, off: 0x3B, bit: 7},
		{gen: Gen9, ribbon: RibbonMarkMisty, off: 0x40, bit: 0},
		{gen: Gen9, ribbon: RibbonMarkSlump, off: 0x44, bit: 1},
		{gen: Gen8, ribbon: RibbonChampionGalar, off: 0x3A, bit: 2},
		{gen: Gen7, ribbon: RibbonBattleTreeMaster, off: 0x36, bit: 1},
		{gen: Gen6, ribbon: RibbonMemoryBattle, off: 0x34, bit: 6},
		{gen: Gen6, ribbon: RibbonMasterToughness, off: 0x35, bit: 5},
	}

	for _, tt := range tests {
		t.Run("gen"+tt.gen.String(), func(t *testing.T) {
			e := blank(t, tt.gen, false)
			assert.True(t, e.SupportsRibbon(tt.ribbon))
			assert.False(t, e.Ribbon(tt.ribbon))

			e.SetRibbon(tt.ribbon, true)
			assert.True(t, e.Ribbon(tt.ribbon))
			assert.Equal(t, byte(1)<<tt.bit, e.Bytes()[tt.off])
			assert.Equal(t, []Ribbon{tt.ribbon}, e.Ribbons())

			e.SetRibbon(tt.ribbon, false)
			assert.Zero(t, e.Bytes()[tt.off])
			assert.Empty(t, e.Ribbons())
		})
	}
}

func TestRibbon_Unsupported(t *testing.T) {
	tests := []struct {
		gen    Generation
		ribbon Ribbon
	}{
		{gen: Gen6, ribbon: RibbonChampionAlola},
		{gen: Gen7, ribbon: RibbonChampionGalar},
		{gen: Gen7, ribbon: RibbonMarkMisty},
		{gen: GenLGPE, ribbon: RibbonChampionKalos},
		{gen: Gen5, ribbon: RibbonChampionKalos},
		{gen: Gen1, ribbon: RibbonEffort},
	}

	for _, tt := range tests {
		t.Run("gen"+tt.gen.String(), func(t *testing.T) {
			e := blank(t, tt.gen, false)
			before := append([]byte(nil), e.Bytes()...)

			assert.False(t, e.SupportsRibbon(tt.ribbon))
			e.SetRibbon(tt.ribbon, true)
			assert.False(t, e.Ribbon(tt.ribbon))
			assert.Equal(t, before, e.Bytes())
		})
	}
}

func TestRibbonCounts_KeepMemoryFlags(t *testing.T) {
	tests := []struct {
		gen      Generation
		counts   int
		flagByte int
	}{
		{gen: Gen6, counts: 0x38, flagByte: 0x34},
		{gen: Gen7, counts: 0x38, flagByte: 0x34},
		{gen: Gen8, counts: 0x3C, flagByte: 0x38},
		{gen: Gen9, counts: 0x3C, flagByte: 0x38},
	}

	for _, tt := range tests {
		t.Run("gen"+tt.gen.String(), func(t *testing.T) {
			e := blank(t, tt.gen, false)

			e.SetRibbonContestCount(3)
			assert.Equal(t, uint8(3), e.RibbonContestCount())
			assert.Equal(t, byte(3), e.Bytes()[tt.counts])
			assert.True(t, e.Ribbon(RibbonMemoryContest))
			assert.Equal(t, byte(0x20), e.Bytes()[tt.flagByte])

			e.SetRibbonBattleCount(8)
			assert.Equal(t, uint8(8), e.RibbonBattleCount())
			assert.Equal(t, byte(8), e.Bytes()[tt.counts+1])
			assert.True(t, e.Ribbon(RibbonMemoryBattle))
			assert.Equal(t, byte(0x60), e.Bytes()[tt.flagByte])

			e.SetRibbonContestCount(0)
			assert.False(t, e.Ribbon(RibbonMemoryContest))
			assert.True(t, e.Ribbon(RibbonMemoryBattle))
			assert.Equal(t, byte(0x40), e.Bytes()[tt.flagByte])

			e.SetRibbonBattleCount(0)
			assert.Zero(t, e.Bytes()[tt.flagByte])
		})
	}
}

func TestRibbonCounts_OtherFlagsUntouched(t *testing.T) {
	e := blank(t, Gen9, false)
	e.SetRibbon(RibbonChampionWorld, true)
	e.SetRibbon(RibbonChampionG6Hoenn, true)

	e.SetRibbonContestCount(1)
	assert.Equal(t, byte(0x10|0x20|0x80), e.Bytes()[0x38])

	e.SetRibbonContestCount(0)
	assert.Equal(t, byte(0x10|0x80), e.Bytes()[0x38])
}

func TestRibbonCounts_AbsentOnGen5(t *testing.T) {
	e := blank(t, Gen5, false)
	before := append([]byte(nil), e.Bytes()...)

	e.SetRibbonContestCount(3)
	e.SetRibbonBattleCount(3)
	assert.Zero(t, e.RibbonContestCount())
	assert.Zero(t, e.RibbonBattleCount())
	assert.Equal(t, before, e.Bytes())
}

func TestFavoriteRibbon(t *testing.T) {
	e := blank(t, Gen9, false)
	e.SetFavoriteRibbon(-1)
	assert.Equal(t, int8(-1), e.FavoriteRibbon())
	assert.Equal(t, byte(0xFF), e.Bytes()[0xE8])

	e.SetFavoriteRibbon(int8(RibbonMarkRare))
	assert.Equal(t, int8(69), e.FavoriteRibbon())

	g7 := blank(t, Gen7, false)
	g7.SetFavoriteRibbon(5)
	assert.Zero(t, g7.FavoriteRibbon())
}
