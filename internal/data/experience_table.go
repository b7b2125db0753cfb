package data

// MaxLevel is the level cap shared by every generation.
const MaxLevel = 100

// GrowthRate selects one of the experience curves.
type GrowthRate uint8

const (
	GrowthMediumFast GrowthRate = iota
	GrowthErratic
	GrowthFluctuating
	GrowthMediumSlow
	GrowthFast
	GrowthSlow

	growthCount
)

// ExperienceTable holds cumulative experience required to reach each level.
// Index = [level][growth]. Level 0 is unused, level 1 requires 0.
var ExperienceTable [MaxLevel + 1][growthCount]uint32

func init() {
	for level := 2; level <= MaxLevel; level++ {
		for g := range growthCount {
			ExperienceTable[level][g] = expFormula(g, int64(level))
		}
	}
}

func expFormula(g GrowthRate, n int64) uint32 {
	cube := n * n * n
	var v int64
	switch g {
	case GrowthMediumFast:
		v = cube
	case GrowthErratic:
		switch {
		case n < 50:
			v = cube * (100 - n) / 50
		case n < 68:
			v = cube * (150 - n) / 100
		case n < 98:
			v = cube * ((1911 - 10*n) / 3) / 500
		default:
			v = cube * (160 - n) / 100
		}
	case GrowthFluctuating:
		switch {
		case n < 15:
			v = cube * ((n+1)/3 + 24) / 50
		case n < 36:
			v = cube * (n + 14) / 50
		default:
			v = cube * (n/2 + 32) / 50
		}
	case GrowthMediumSlow:
		v = 6*cube/5 - 15*n*n + 100*n - 140
	case GrowthFast:
		v = 4 * cube / 5
	case GrowthSlow:
		v = 5 * cube / 4
	}
	return uint32(v)
}

// GetExpForLevel returns cumulative experience required to reach level.
// Returns 0 for level <= 1 and the level 100 value above the cap. Unknown
// growth rates fall back to Medium Fast.
func GetExpForLevel(level int, growth GrowthRate) uint32 {
	if growth >= growthCount {
		growth = GrowthMediumFast
	}
	if level <= 1 {
		return 0
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	return ExperienceTable[level][growth]
}

// GetLevelForExp returns the level corresponding to exp.
// Scans upward from level 1 and stops at the first level whose threshold
// exceeds exp.
func GetLevelForExp(exp uint32, growth GrowthRate) int {
	if growth >= growthCount {
		growth = GrowthMediumFast
	}
	level := 1
	for level < MaxLevel {
		if ExperienceTable[level+1][growth] > exp {
			break
		}
		level++
	}
	return level
}
