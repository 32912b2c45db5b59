package dice

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

// fixed cycles through a predetermined list of values
type fixed struct {
	values []int
	i      int
}

func (f *fixed) Intn(n int) int {
	v := f.values[f.i%len(f.values)]
	f.i++
	return v % n
}

func TestRoll(t *testing.T) {
	a := assert.New(t)

	d := Roll(&fixed{values: []int{0, 1, 2, 3, 4}}, 5, 6)
	a.Equal([]int{1, 2, 3, 4, 5}, d)

	d = Roll(&fixed{values: []int{5}}, 3, 6)
	a.Equal([]int{6, 6, 6}, d)

	a.Empty(Roll(&fixed{values: []int{0}}, 0, 6))
}

func TestReroll(t *testing.T) {
	d := []int{6, 6, 6}
	Reroll(&fixed{values: []int{0, 1, 2}}, d, 6)
	assert.Equal(t, []int{1, 2, 3}, d)
}

func TestCountMatching(t *testing.T) {
	a := assert.New(t)

	a.Equal(3, CountMatching([]int{3, 1, 3, 2, 5}, 3))
	a.Equal(1, CountMatching([]int{3, 1, 3, 2, 5}, 4))
	a.Equal(0, CountMatching([]int{3, 3, 2, 5}, 4))

	// a wild die only counts once when the target is the wild face itself
	a.Equal(2, CountMatching([]int{1, 1, 2, 5}, WildFace))

	a.Equal(0, CountMatching(nil, 3))
}
