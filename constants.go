package main

// Output formats
const (
	jsonOutputFormat  = "json"
	tableOutputFormat = "table"
)

// Session states
type sessionState int

const (
	gridState sessionState = iota
	breakdownState
	tripsState
	formState
	loading
	configView
	errorState
)

func (ss sessionState) String() string {
	switch ss {
	case gridState:
		return "expenses"
	case breakdownState:
		return "breakdown"
	case tripsState:
		return "trips"
	case formState:
		return "edit"
	case loading:
		return "loading"
	case configView:
		return "configuration"
	case errorState:
		return "error"
	}

	return "unknown"
}
