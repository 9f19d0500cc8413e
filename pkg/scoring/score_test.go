package scoring

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	cases := []struct {
		a, b Score
		want int
	}{
		{Score{1}, Score{1}, 0},
		{Score{2}, Score{1}, 1},
		{Score{1, 5}, Score{2}, -1},
		{Score{1}, Score{1, 0}, -1},
		{Score{1, 0}, Score{1}, 1},
		{nil, Score{}, 0},
		{Score{-3}, Score{-2}, -1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Compare(tc.a, tc.b), "%v vs %v", tc.a, tc.b)
		assert.Equal(t, -tc.want, Compare(tc.b, tc.a), "%v vs %v", tc.b, tc.a)
	}
}

func TestCompare_Transitive(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	gen := func() Score {
		s := make(Score, rng.Intn(3))
		for i := range s {
			s[i] = rng.Intn(3)
		}
		return s
	}
	for i := 0; i < 2000; i++ {
		a, b, c := gen(), gen(), gen()
		if Compare(a, b) >= 0 && Compare(b, c) >= 0 {
			assert.GreaterOrEqual(t, Compare(a, c), 0, "%v %v %v", a, b, c)
		}
	}
}

func TestLess(t *testing.T) {
	assert.True(t, Score{1}.Less(Score{2}))
	assert.True(t, Score{3}.Less(Score{3, 0}))
	assert.False(t, Score{3, 1}.Less(Score{3, 1}))
}
