package percussion

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEveryElementVariationIsInCatalog(t *testing.T) {
	assert := assert.New(t)
	for e := 0; e < NumElements(); e++ {
		for v := 0; v < NumVariations; v++ {
			_, ok := Lookup(KeyFor(e, v))
			assert.True(ok, "element %d variation %d", e, v)
		}
	}
}

func TestHalfOpenHihat(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(92, KeyFor(10, 1))
	a, ok := Lookup(KeyFor(10, 1))
	assert.True(ok)
	assert.Equal(46, a.OutputPitch)
}

func TestUnknownElementFallsBackToSnare(t *testing.T) {
	cases := []struct{ element, variation int }{
		{17, 0}, {17, 2}, {18, 1}, {100, 5}, {-1, 0},
	}
	for _, c := range cases {
		name := fmt.Sprintf("element %d variation %d", c.element, c.variation)
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, FallbackKey, KeyFor(c.element, c.variation))
		})
	}
	assert.Equal(t, 38, FallbackKey)
}

func TestVariationOutOfRangeIsClamped(t *testing.T) {
	assert := assert.New(t)
	for e := 0; e < NumElements(); e++ {
		for _, v := range []int{-5, -1, 3, 4, 17} {
			assert.Equal(KeyFor(e, 0), KeyFor(e, v), "element %d variation %d", e, v)
		}
	}
}

func TestElementNames(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(17, NumElements())
	assert.Equal("Kick", ElementName(0))
	assert.Equal("Hihat", ElementName(10))
	assert.Equal("half", VariationName(10, 1))
	assert.Equal("bell", VariationName(15, 2))
	assert.Equal("", VariationName(0, 1))
	assert.Equal("", ElementName(17))
	assert.Equal("", VariationName(1, 3))
}
