package carbon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func TestFactor(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		subtype  string
		want     float64
	}{
		{"bus", CategoryTransportation, "bus", 0.089},
		{"train", CategoryTransportation, "train", 0.041},
		{"car", CategoryTransportation, "car", 0.21},
		{"electric vehicle", CategoryTransportation, "electric_vehicle", 0.05},
		{"walking", CategoryTransportation, "walking", 0},
		{"vegetarian", CategoryMeal, "vegetarian", 2.0},
		{"fish", CategoryMeal, "fish", 3.5},
		{"email", CategoryDigital, DigitalEmail, 0.004},
		{"streaming", CategoryDigital, DigitalStreaming, 0.036},
		{"unknown subtype", CategoryTransportation, "rocket", 0},
		{"unknown category", Category("energy"), "bus", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Factor(tt.category, tt.subtype))
		})
	}
}

func TestFactorsReturnsCopy(t *testing.T) {
	table := Factors()
	table[CategoryTransportation]["car"] = 99

	assert.Equal(t, 0.21, Factor(CategoryTransportation, "car"))
	assert.Len(t, table, 3)
	assert.Len(t, table[CategoryMeal], 4)
}

func TestTransportationEmissions(t *testing.T) {
	for _, km := range []float64{0, 1, 12.5, 300} {
		assert.Zero(t, TransportationEmissions(Walking, km))
		assert.Zero(t, TransportationEmissions(Cycling, km))
	}

	assert.InDelta(t, 2.10, TransportationEmissions(Car, 10), eps)
	assert.InDelta(t, 0.89, TransportationEmissions(Bus, 10), eps)
	assert.InDelta(t, 0.41, TransportationEmissions(Train, 10), eps)
	assert.InDelta(t, 0.5, TransportationEmissions(ElectricVehicle, 10), eps)
	assert.Zero(t, TransportationEmissions(TransportMode("teleport"), 10))
}

func TestMealEmissions(t *testing.T) {
	assert.InDelta(t, 10.00, MealEmissions(Meat, 2), eps)
	assert.InDelta(t, 4.50, MealEmissions(Vegan, 3), eps)
	assert.InDelta(t, 3.5, MealEmissions(Fish, 1), eps)
	assert.Zero(t, MealEmissions(MealType("pizza"), 4))
}

func TestDigitalEmissionsRoundsSumOnce(t *testing.T) {
	// 0.4 + 0.072 = 0.472
	assert.InDelta(t, 0.47, DigitalEmissions(100, 2), eps)
	// 0.004 + 0.036*0.125 = 0.0085，逐项取整会得到 0，求和后取整为 0.01
	assert.InDelta(t, 0.01, DigitalEmissions(1, 0.125), eps)
	assert.Zero(t, DigitalEmissions(0, 0))
}

func TestRound2(t *testing.T) {
	assert.InDelta(t, 0.47, Round2(0.472), eps)
	assert.InDelta(t, 0.13, Round2(0.125), eps)
	assert.InDelta(t, 12.57, Round2(12.5700000001), eps)
	assert.Zero(t, Round2(0.004))
}

func TestDailyFootprint(t *testing.T) {
	record := ActivityRecord{
		Transportation: &Transportation{Mode: Car, DistanceKm: 10},
		Meals:          []Meal{{Type: Meat, Count: 2}},
		DigitalWaste:   &DigitalWaste{Emails: 100, StreamingHours: 2},
	}

	fp := DailyFootprint(record)

	assert.InDelta(t, 2.10, fp.TransportationEmissions, eps)
	assert.InDelta(t, 10.00, fp.MealEmissions, eps)
	assert.InDelta(t, 0.47, fp.DigitalEmissions, eps)
	assert.InDelta(t, 12.57, fp.TotalEmissions, eps)
	assert.Same(t, record.Transportation, fp.Breakdown.Transportation)
	assert.Same(t, record.DigitalWaste, fp.Breakdown.Digital)
	assert.Equal(t, record.Meals, fp.Breakdown.Meals)

	assert.Equal(t, 50, SustainabilityScore(fp.TotalEmissions))
}

func TestDailyFootprintMissingSections(t *testing.T) {
	fp := DailyFootprint(ActivityRecord{})

	assert.Zero(t, fp.TransportationEmissions)
	assert.Zero(t, fp.MealEmissions)
	assert.Zero(t, fp.DigitalEmissions)
	assert.Zero(t, fp.TotalEmissions)
	assert.Nil(t, fp.Breakdown.Transportation)
}

func TestDailyFootprintFoldsMeals(t *testing.T) {
	fp := DailyFootprint(ActivityRecord{
		Meals: []Meal{
			{Type: Vegan},
			{Type: Vegetarian, Count: 2},
			{Type: MealType("unknown"), Count: 5},
		},
	})

	// 1.5 (缺省 1 餐) + 4.0 + 0
	assert.InDelta(t, 5.5, fp.MealEmissions, eps)
	assert.InDelta(t, 5.5, fp.TotalEmissions, eps)
}

func TestDailyFootprintIsDeterministic(t *testing.T) {
	record := ActivityRecord{
		Transportation: &Transportation{Mode: Bus, DistanceKm: 7.3},
		Meals:          []Meal{{Type: Fish, Count: 1}, {Type: Vegan, Count: 2}},
		DigitalWaste:   &DigitalWaste{Emails: 37, StreamingHours: 1.5},
	}

	first := DailyFootprint(record)
	second := DailyFootprint(record)
	require.Equal(t, first, second)
}

func TestEquivalencies(t *testing.T) {
	eq := Equivalencies(150)
	assert.InDelta(t, 781.25, eq.MilesDriven, eps)
	assert.InDelta(t, 18248.18, eq.SmartphonesCharged, eps)
	assert.InDelta(t, 2.5, eq.TreeSeedlings, eps)

	assert.Equal(t, Equivalency{}, Equivalencies(0))
	assert.Equal(t, Equivalency{}, Equivalencies(-3))
}
