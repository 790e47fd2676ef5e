package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func item(id uint, qty float64, checked bool, calPerUnit float64) PortionItem {
	return PortionItem{
		ID:              id,
		Quantity:        qty,
		Checked:         checked,
		CaloriesPerUnit: calPerUnit,
		ProteinPerUnit:  calPerUnit / 10,
		CarbsPerUnit:    calPerUnit / 10,
		FatPerUnit:      calPerUnit / 10,
		FiberPerUnit:    calPerUnit / 10,
	}
}

func TestComputeScalesByPortionOverCookedWeight(t *testing.T) {
	// 200 g at 1.5 kcal/g (150 kcal/100g), half the cooked batch eaten.
	items := []PortionItem{item(1, 200, true, 1.5)}

	totals, rawWeight := Compute(items, nil, 200, 100)

	assert.Equal(t, 200.0, rawWeight)
	assert.Equal(t, 150, totals.Calories)
}

func TestComputeIgnoresUncheckedItems(t *testing.T) {
	items := []PortionItem{
		item(1, 500, false, 2),
		item(2, 100, true, 1),
	}

	totals, rawWeight := Compute(items, nil, 100, 100)

	assert.Equal(t, 100.0, rawWeight)
	assert.Equal(t, 100, totals.Calories)
}

func TestComputeZeroQuantityContributesNothing(t *testing.T) {
	items := []PortionItem{
		item(1, 0, true, 5),
		item(2, 50, true, 2),
	}

	totals, rawWeight := Compute(items, nil, 0, 0)

	assert.Equal(t, 50.0, rawWeight)
	assert.Equal(t, 100, totals.Calories)
}

func TestComputeNoScalingWithoutBothWeights(t *testing.T) {
	items := []PortionItem{item(1, 100, true, 2)}

	for _, weights := range [][2]float64{{0, 100}, {100, 0}, {0, 0}, {-1, 100}, {100, -1}} {
		totals, _ := Compute(items, nil, weights[0], weights[1])
		assert.Equal(t, 200, totals.Calories, "cooked=%v portion=%v", weights[0], weights[1])
	}
}

func TestComputeOverridesReplaceQuantities(t *testing.T) {
	items := []PortionItem{
		item(1, 100, true, 1),
		item(2, 100, true, 1),
	}
	overrides := map[uint]float64{1: 300}

	totals, rawWeight := Compute(items, overrides, 0, 0)

	assert.Equal(t, 400.0, rawWeight)
	assert.Equal(t, 400, totals.Calories)
}

func TestComputeNonPositiveOverrideExcludesItem(t *testing.T) {
	items := []PortionItem{
		item(1, 100, true, 1),
		item(2, 100, true, 1),
	}
	overrides := map[uint]float64{1: 0, 2: -5}

	totals, rawWeight := Compute(items, overrides, 0, 0)

	assert.Equal(t, 0.0, rawWeight)
	assert.Equal(t, 0, totals.Calories)
}

func TestComputeRoundsOnceAfterScaling(t *testing.T) {
	// Three items whose per-item contributions would each round up;
	// summing first keeps the total honest.
	items := []PortionItem{
		item(1, 1, true, 0.25),
		item(2, 1, true, 0.25),
		item(3, 1, true, 0.25),
	}

	totals, _ := Compute(items, nil, 0, 0)

	assert.Equal(t, 1, totals.Calories) // 0.75 rounds half away from zero
	assert.InDelta(t, 0.1, totals.ProteinG, 1e-9)
}

func TestComputeGramChannelsRoundToTenth(t *testing.T) {
	items := []PortionItem{{
		ID:             1,
		Quantity:       100,
		Checked:        true,
		ProteinPerUnit: 0.123,
	}}

	totals, _ := Compute(items, nil, 300, 100)

	// 12.3 * (1/3) = 4.1
	assert.InDelta(t, 4.1, totals.ProteinG, 1e-9)
}

func TestScaleFactor(t *testing.T) {
	assert.Equal(t, 0.5, ScaleFactor(200, 100))
	assert.Equal(t, 1.0, ScaleFactor(0, 100))
	assert.Equal(t, 1.0, ScaleFactor(200, 0))
	assert.Equal(t, 1.0, ScaleFactor(-10, -10))
	assert.Equal(t, 1.5, ScaleFactor(200, 300)) // ate more than one batch? still just a ratio
}

func TestEffectiveQuantityFallsBackToItemQuantity(t *testing.T) {
	it := item(7, 120, true, 1)

	assert.Equal(t, 120.0, EffectiveQuantity(it, nil))
	assert.Equal(t, 120.0, EffectiveQuantity(it, map[uint]float64{8: 50}))
	assert.Equal(t, 50.0, EffectiveQuantity(it, map[uint]float64{7: 50}))
}

func TestQualifyingCount(t *testing.T) {
	items := []PortionItem{
		item(1, 100, true, 1),
		item(2, 100, false, 1),
		item(3, 100, true, 1),
	}

	assert.Equal(t, 2, QualifyingCount(items, nil))
	assert.Equal(t, 1, QualifyingCount(items, map[uint]float64{1: 0}))
	assert.Equal(t, 0, QualifyingCount(items, map[uint]float64{1: 0, 3: -1}))
}
