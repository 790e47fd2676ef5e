package services

import (
	"math"

	"backend/models"
)

// PortionItem is the resolution engine's view of one ingredient row,
// whether it comes from a live template line or a frozen meal snapshot.
type PortionItem struct {
	ID       uint
	Quantity float64
	Checked  bool

	CaloriesPerUnit float64
	ProteinPerUnit  float64
	CarbsPerUnit    float64
	FatPerUnit      float64
	FiberPerUnit    float64
}

// MacroTotals is the engine's output: calories rounded to the nearest
// kcal, gram channels to the nearest 0.1 g.
type MacroTotals struct {
	Calories int     `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
	FiberG   float64 `json:"fiber_g"`
}

func PortionItemsFromLines(lines []models.TemplateLineItem) []PortionItem {
	items := make([]PortionItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, PortionItem{
			ID:              l.ID,
			Quantity:        l.Quantity,
			Checked:         l.Checked,
			CaloriesPerUnit: l.CaloriesPerUnit,
			ProteinPerUnit:  l.ProteinPerUnit,
			CarbsPerUnit:    l.CarbsPerUnit,
			FatPerUnit:      l.FatPerUnit,
			FiberPerUnit:    l.FiberPerUnit,
		})
	}
	return items
}

// PortionItemsFromSnapshot adapts frozen snapshot rows. A snapshot only
// ever contains rows that were selected at logging time, so every row is
// checked.
func PortionItemsFromSnapshot(rows []models.MealIngredient) []PortionItem {
	items := make([]PortionItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, PortionItem{
			ID:              r.ID,
			Quantity:        r.Quantity,
			Checked:         true,
			CaloriesPerUnit: r.CaloriesPerUnit,
			ProteinPerUnit:  r.ProteinPerUnit,
			CarbsPerUnit:    r.CarbsPerUnit,
			FatPerUnit:      r.FatPerUnit,
			FiberPerUnit:    r.FiberPerUnit,
		})
	}
	return items
}

// EffectiveQuantity merges a per-log override with the item's own
// quantity. Overrides win when present; otherwise the template default
// applies.
func EffectiveQuantity(item PortionItem, overrides map[uint]float64) float64 {
	if overrides != nil {
		if q, ok := overrides[item.ID]; ok {
			return q
		}
	}
	return item.Quantity
}

// ScaleFactor is the cooking-yield correction: the share of the cooked
// batch that was actually eaten. With missing or non-positive weights
// there is nothing to scale by, so the totals pass through unchanged.
func ScaleFactor(cookedWeight, portionWeight float64) float64 {
	if cookedWeight > 0 && portionWeight > 0 {
		return portionWeight / cookedWeight
	}
	return 1.0
}

// Compute resolves a set of ingredient rows into consumed macro totals.
// Unchecked rows and rows whose effective quantity is not positive are
// treated as not consumed. Rounding happens exactly once, after scaling,
// so per-ingredient rounding error cannot compound. The second return
// value is the unrounded raw weight (sum of effective quantities).
func Compute(items []PortionItem, overrides map[uint]float64, cookedWeight, portionWeight float64) (MacroTotals, float64) {
	var rawWeight, cal, prot, carbs, fat, fiber float64
	for _, it := range items {
		if !it.Checked {
			continue
		}
		q := EffectiveQuantity(it, overrides)
		if q <= 0 {
			continue
		}
		rawWeight += q
		cal += q * it.CaloriesPerUnit
		prot += q * it.ProteinPerUnit
		carbs += q * it.CarbsPerUnit
		fat += q * it.FatPerUnit
		fiber += q * it.FiberPerUnit
	}

	scale := ScaleFactor(cookedWeight, portionWeight)
	totals := MacroTotals{
		Calories: int(math.Round(cal * scale)),
		ProteinG: roundTenth(prot * scale),
		CarbsG:   roundTenth(carbs * scale),
		FatG:     roundTenth(fat * scale),
		FiberG:   roundTenth(fiber * scale),
	}
	return totals, rawWeight
}

// QualifyingCount reports how many rows would actually contribute to a
// resolution: checked, with a positive effective quantity. Callers must
// reject logging when this is zero.
func QualifyingCount(items []PortionItem, overrides map[uint]float64) int {
	n := 0
	for _, it := range items {
		if it.Checked && EffectiveQuantity(it, overrides) > 0 {
			n++
		}
	}
	return n
}

// math.Round rounds half away from zero, which is the behavior we want
// for nutrition figures.
func roundTenth(x float64) float64 {
	return math.Round(x*10) / 10
}
