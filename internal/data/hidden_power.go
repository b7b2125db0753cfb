package data

// HiddenPowerIVs holds, for each hidden power type from Fighting (row 0) to Dark
// (row 15), the low IV bit per stat in HP, Atk, Def, Spe, SpA, SpD order.
var HiddenPowerIVs = [16][6]uint8{
	{1, 1, 0, 0, 0, 0}, // Fighting
	{0, 0, 0, 1, 0, 0}, // Flying
	{1, 1, 0, 1, 0, 0}, // Poison
	{1, 1, 1, 1, 0, 0}, // Ground
	{1, 1, 0, 0, 1, 0}, // Rock
	{1, 0, 0, 1, 1, 0}, // Bug
	{1, 0, 1, 1, 1, 0}, // Ghost
	{1, 1, 1, 1, 1, 0}, // Steel
	{1, 0, 1, 0, 0, 1}, // Fire
	{1, 0, 0, 1, 0, 1}, // Water
	{1, 0, 1, 1, 0, 1}, // Grass
	{1, 1, 1, 1, 0, 1}, // Electric
	{1, 0, 1, 0, 1, 1}, // Psychic
	{1, 0, 0, 1, 1, 1}, // Ice
	{1, 0, 1, 1, 1, 1}, // Dragon
	{1, 1, 1, 1, 1, 1}, // Dark
}

// HiddenPowerType computes the hidden power type index (1 = Fighting .. 16 =
// Dark) from six IVs in HP, Atk, Def, Spe, SpA, SpD order.
func HiddenPowerType(ivs [6]uint8) uint8 {
	var bits int
	for i, iv := range ivs {
		bits |= int(iv&1) << i
	}
	return uint8(15*bits/63 + 1)
}
