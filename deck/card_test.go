package deck

import (
	"testing"

	"github.com/minaorangina/agricola/data"
	utils "github.com/minaorangina/agricola/internal"
	"github.com/minaorangina/agricola/internal/goods"
	"github.com/stretchr/testify/assert"
)

func TestCard(t *testing.T) {
	cases := []struct {
		name     string
		card     *Card
		expected string
	}{
		{"major improvement", NewCard(MajorImprovement, data.Card{Key: "well"}), "major_improvement:well"},
		{"minor improvement", NewCard(MinorImprovement, data.Card{Key: "shepherds_crook"}), "minor_improvement:shepherds_crook"},
		{"occupation", NewCard(Occupation, data.Card{Key: "wood_cutter"}), "occupation:wood_cutter"},
	}

	for _, c := range cases {
		utils.AssertEqual(t, c.card.String(), c.expected)
	}

	t.Run("costs are copied out", func(t *testing.T) {
		c := NewCard(MajorImprovement, data.Card{Key: "well", Costs: []goods.Cost{goods.MustParseCost("1 wood, 3 stone")}})
		costs := c.Costs()
		costs[0] = nil
		assert.Equal(t, goods.MustParseCost("1 wood, 3 stone"), c.Costs()[0])
	})

	t.Run("cooking and baking", func(t *testing.T) {
		hearth := NewCard(MajorImprovement, data.Card{
			Key:  "4_cooking_hearth",
			Cook: map[goods.Type]int{goods.Sheep: 2},
			Bake: map[goods.Type]int{goods.Grain: 3},
		})
		assert.True(t, hearth.CanCook())
		assert.True(t, hearth.CanBake())
		assert.False(t, NewCard(MajorImprovement, data.Card{Key: "well"}).CanCook())
	})
}

func TestFamily(t *testing.T) {
	utils.AssertEqual(t, Occupation.String(), "occupation")
	utils.AssertEqual(t, Family(9).String(), "family(9)")

	f, ok := ParseFamily("minor_improvement")
	assert.True(t, ok)
	assert.Equal(t, MinorImprovement, f)

	_, ok = ParseFamily("joker")
	assert.False(t, ok)
}
