package clique

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quickshift/plannercore/catalog"
)

func TestApportion_LargestRemainder(t *testing.T) {
	fractions := map[string]float64{"A": 0.5, "B": 0.3, "C": 0.2}
	targets := Apportion(fractions, 6)
	sum := 0
	for _, v := range targets {
		sum += v
	}
	assert.Equal(t, 6, sum)
	assert.Equal(t, 3, targets["A"])
}

func TestApportion_TiesBrokenAlphabetically(t *testing.T) {
	fractions := map[string]float64{"Z": 0.5, "A": 0.5}
	targets := Apportion(fractions, 1)
	assert.Equal(t, 1, targets["A"])
	assert.Equal(t, 0, targets["Z"])
}

func TestMatchesLineBalance_DisabledByDefault(t *testing.T) {
	g := &Graph{Nodes: []Node{{Course: &catalog.Course{ID: 1}}}}
	assert.True(t, MatchesLineBalance(nil, g, []int{0}))
}

func TestMatchesLineBalance_RejectsMismatch(t *testing.T) {
	courseA := &catalog.Course{ID: 1}
	courseB := &catalog.Course{ID: 2}
	g := &Graph{Nodes: []Node{{Course: courseA}, {Course: courseB}}}

	ctx := &Context{
		LineBalance: map[string]float64{"A": 1.0},
		LineOf: func(c *catalog.Course) string {
			if c.ID == 1 {
				return "A"
			}
			return "B"
		},
	}

	assert.False(t, MatchesLineBalance(ctx, g, []int{0, 1}))
}
