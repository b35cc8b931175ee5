package trip

import "github.com/shopspring/decimal"

// NewTripCategory and NewTripAmount seed the single category of a freshly added trip.
const (
	NewTripCategory = "fare"
	NewTripAmount   = 1000
)

func amounts(food, fare, rent, misc int64) Categories {
	return NewCategories(
		Amount{Category: "food", Value: decimal.NewFromInt(food)},
		Amount{Category: "fare", Value: decimal.NewFromInt(fare)},
		Amount{Category: "rent", Value: decimal.NewFromInt(rent)},
		Amount{Category: "misc", Value: decimal.NewFromInt(misc)},
	)
}

// DefaultTrips is the seed written on first launch, when no snapshot exists yet.
func DefaultTrips() []Trip {
	return []Trip{
		{
			Name: "Trip to Goa",
			Expenses: []Record{
				{Date: "2024-09-18", Categories: amounts(200, 100, 1200, 150)},
				{Date: "2024-09-19", Categories: amounts(250, 80, 1200, 100)},
			},
		},
		{
			Name: "Trip to Manali",
			Expenses: []Record{
				{Date: "2024-09-20", Categories: amounts(300, 150, 1000, 200)},
				{Date: "2024-09-21", Categories: amounts(220, 90, 1000, 180)},
			},
		},
	}
}
