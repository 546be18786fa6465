package storefront

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func priced(id string, price float64) Item {
	return Item{ID: id, Name: "Item " + id, Price: &price}
}

func TestCart_AddAppendsThenIncrements(t *testing.T) {
	a, b := priced("a", 10), priced("b", 5)

	cart := Cart{}.Add(a).Add(b).Add(a)

	lines := cart.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "a", lines[0].Item.ID)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "b", lines[1].Item.ID)
	assert.Equal(t, 1, lines[1].Quantity)
	assert.Equal(t, 3, cart.Count())
	assert.Equal(t, 2, cart.Len())
}

func TestCart_OperationsDoNotMutateReceiver(t *testing.T) {
	a := priced("a", 10)
	before := Cart{}.Add(a)

	after := before.Add(a)
	assert.Equal(t, 1, before.Quantity("a"))
	assert.Equal(t, 2, after.Quantity("a"))

	removed := after.Remove("a")
	assert.Equal(t, 2, after.Quantity("a"))
	assert.Equal(t, 1, removed.Quantity("a"))

	cleared := after.Clear()
	assert.True(t, cleared.IsEmpty())
	assert.Equal(t, 2, after.Quantity("a"))
}

func TestCart_LinesReturnsCopy(t *testing.T) {
	cart := Cart{}.Add(priced("a", 1))
	lines := cart.Lines()
	lines[0].Quantity = 99

	assert.Equal(t, 1, cart.Quantity("a"))
}

func TestCart_RemoveDecrementsThenDrops(t *testing.T) {
	a := priced("a", 10)
	cart := Cart{}.Add(a).Add(a)

	cart = cart.Remove("a")
	assert.Equal(t, 1, cart.Quantity("a"))

	cart = cart.Remove("a")
	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 0, cart.Quantity("a"))
}

func TestCart_RemoveUnknownIsNoop(t *testing.T) {
	assert.NotPanics(t, func() {
		cart := Cart{}.Remove("ghost")
		assert.True(t, cart.IsEmpty())
		assert.Equal(t, 0, cart.Count())
	})

	cart := Cart{}.Add(priced("a", 1)).Remove("ghost")
	assert.Equal(t, 1, cart.Quantity("a"))
}

func TestCart_TotalCoercesBadPrices(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(1)
	cart := Cart{}.
		Add(priced("a", 10)).
		Add(priced("a", 10)).
		Add(Item{ID: "missing"}).
		Add(Item{ID: "nan", Price: &nan}).
		Add(Item{ID: "inf", Price: &inf})

	assert.True(t, cart.Total().Equal(decimal.NewFromInt(20)), "got %s", cart.Total())
	assert.Equal(t, 5, cart.Count())
}

func TestCart_TotalAvoidsFloatDrift(t *testing.T) {
	cart := Cart{}.Add(priced("a", 0.1)).Add(priced("b", 0.2))

	assert.Equal(t, "0.3", cart.Total().String())
}

func TestCart_RandomSequencesKeepInvariants(t *testing.T) {
	items := []Item{priced("a", 1.5), priced("b", 2), {ID: "c"}, priced("d", 0.25)}
	rng := rand.New(rand.NewSource(42))

	for run := 0; run < 200; run++ {
		cart := Cart{}
		expected := map[string]int{}
		for step := 0; step < 50; step++ {
			item := items[rng.Intn(len(items))]
			if rng.Intn(3) == 0 {
				cart = cart.Remove(item.ID)
				if expected[item.ID] > 0 {
					expected[item.ID]--
				}
			} else {
				cart = cart.Add(item)
				expected[item.ID]++
			}

			seen := map[string]bool{}
			for _, line := range cart.Lines() {
				require.GreaterOrEqual(t, line.Quantity, 1)
				require.False(t, seen[line.Item.ID], "duplicate line for %s", line.Item.ID)
				seen[line.Item.ID] = true
			}
		}

		want := decimal.Zero
		for _, item := range items {
			require.Equal(t, expected[item.ID], cart.Quantity(item.ID))
			want = want.Add(UnitPrice(item.Price).Mul(decimal.NewFromInt(int64(expected[item.ID]))))
		}
		require.True(t, want.Equal(cart.Total()), "want %s, got %s", want, cart.Total())
	}
}

func TestCart_TotalIndependentOfOrder(t *testing.T) {
	a, b := priced("a", 3.3), priced("b", 1.1)

	first := Cart{}.Add(a).Add(b).Add(a).Remove("a")
	second := Cart{}.Add(b).Add(a)

	assert.True(t, first.Total().Equal(second.Total()))
}

func TestCart_Draft(t *testing.T) {
	now := time.Date(2024, 3, 5, 14, 7, 0, 0, time.UTC)
	cart := Cart{}.Add(priced("a", 10)).Add(priced("a", 10))

	draft := cart.Draft(now)

	assert.Equal(t, now, draft.ComposedAt)
	assert.True(t, draft.Total.Equal(decimal.NewFromInt(20)))
	require.Len(t, draft.Lines, 1)
	assert.Equal(t, "", Cart{}.Draft(now).Message("Loja"))
}
