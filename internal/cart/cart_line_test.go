package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func promoLine() Line {
	return Line{
		ItemCode:        "ITM-001",
		Price:           1000,
		DiscountedPrice: 800,
		MaxQuantity:     10,
		PaidQuantity:    3,
		FreeQuantity:    1,
		MaxFreeQuantity: 2,
	}
}

func TestFreeQuantityFor(t *testing.T) {
	t.Run("below_first_paid_set", func(t *testing.T) {
		line := promoLine()
		assert.Equal(t, 0, FreeQuantityFor(1, line))
		assert.Equal(t, 0, FreeQuantityFor(2, line))
	})

	t.Run("full_paid_sets", func(t *testing.T) {
		line := promoLine()
		assert.Equal(t, 1, FreeQuantityFor(3, line))
		assert.Equal(t, 1, FreeQuantityFor(4, line))
		assert.Equal(t, 1, FreeQuantityFor(5, line))
		assert.Equal(t, 2, FreeQuantityFor(6, line))
	})

	t.Run("capped_at_max_free", func(t *testing.T) {
		line := promoLine()
		// 9/3 = 3 set berbayar, tapi maxFreeQuantity = 2
		assert.Equal(t, 2, FreeQuantityFor(9, line))
		assert.Equal(t, 2, FreeQuantityFor(30, line))
	})

	t.Run("promo_disabled_when_any_param_falsy", func(t *testing.T) {
		noPaid := promoLine()
		noPaid.PaidQuantity = 0
		assert.Equal(t, 0, FreeQuantityFor(6, noPaid))

		noFree := promoLine()
		noFree.FreeQuantity = 0
		assert.Equal(t, 0, FreeQuantityFor(6, noFree))

		noMax := promoLine()
		noMax.MaxFreeQuantity = 0
		assert.Equal(t, 0, FreeQuantityFor(6, noMax))
	})

	t.Run("negative_params_treated_as_disabled", func(t *testing.T) {
		line := promoLine()
		line.PaidQuantity = -3
		assert.Equal(t, 0, FreeQuantityFor(6, line))
	})
}

func TestLine_EffectivePrice(t *testing.T) {
	t.Run("discounted_price_wins_when_lower", func(t *testing.T) {
		line := Line{Price: 1000, DiscountedPrice: 800}
		assert.Equal(t, float64(800), line.EffectivePrice())
	})

	t.Run("price_wins_when_discounted_not_lower", func(t *testing.T) {
		line := Line{Price: 1000, DiscountedPrice: 1000}
		assert.Equal(t, float64(1000), line.EffectivePrice())

		line = Line{Price: 1000, DiscountedPrice: 1200}
		assert.Equal(t, float64(1000), line.EffectivePrice())
	})
}

func TestState_Total(t *testing.T) {
	t.Run("empty_cart_is_zero", func(t *testing.T) {
		assert.Equal(t, float64(0), State{}.Total())
	})

	t.Run("sums_effective_price_times_quantity", func(t *testing.T) {
		state := State{Lines: []Line{
			{ItemCode: "A", Price: 1000, DiscountedPrice: 800, Quantity: 2},
			{ItemCode: "B", Price: 500, DiscountedPrice: 500, Quantity: 3},
		}}
		// 800*2 + 500*3
		assert.Equal(t, float64(3100), state.Total())
	})

	t.Run("free_items_do_not_affect_total", func(t *testing.T) {
		state := State{Lines: []Line{
			{ItemCode: "A", Price: 1000, DiscountedPrice: 800, Quantity: 3, FreeItemQuantity: 1},
		}}
		assert.Equal(t, float64(2400), state.Total())
	})
}

func TestState_ReconcileFreeQuantities(t *testing.T) {
	t.Run("no_change_returns_false", func(t *testing.T) {
		line := promoLine()
		line.Quantity = 3
		line.FreeItemQuantity = 1

		state := State{Lines: []Line{line}}
		assert.False(t, state.reconcileFreeQuantities())
		assert.Equal(t, 1, state.Lines[0].FreeItemQuantity)
	})

	t.Run("stale_free_value_is_recomputed", func(t *testing.T) {
		line := promoLine()
		line.Quantity = 6
		line.FreeItemQuantity = 1 // basi, harusnya 2

		state := State{Lines: []Line{line}}
		assert.True(t, state.reconcileFreeQuantities())
		assert.Equal(t, 2, state.Lines[0].FreeItemQuantity)
	})

	t.Run("promo_removed_resets_free_to_zero", func(t *testing.T) {
		line := promoLine()
		line.Quantity = 6
		line.FreeItemQuantity = 2
		line.PaidQuantity = 0

		state := State{Lines: []Line{line}}
		assert.True(t, state.reconcileFreeQuantities())
		assert.Equal(t, 0, state.Lines[0].FreeItemQuantity)
	})
}
