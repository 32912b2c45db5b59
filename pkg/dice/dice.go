package dice

import "liarsdice-server/internal/rng"

// WildFace is the die face that counts toward every other face when
// tallying a challenge
const WildFace = 1

// Roll returns n dice with faces in [1, sides]
func Roll(r rng.Generator, n, sides int) []int {
	d := make([]int, n)
	Reroll(r, d, sides)
	return d
}

// Reroll re-rolls every die in place
func Reroll(r rng.Generator, d []int, sides int) {
	for i := range d {
		d[i] = r.Intn(sides) + 1
	}
}

// CountMatching returns how many dice show target or the wild face.
// A wild die showing target itself is only counted once.
func CountMatching(d []int, target int) int {
	count := 0
	for _, face := range d {
		if face == target || face == WildFace {
			count++
		}
	}

	return count
}
