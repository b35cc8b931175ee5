package main

import (
	"fmt"
	"time"

	"github.com/Rshep3087/triptui/trip"
)

// Period is the span of days a trip covers.
type Period struct {
	start time.Time
	end   time.Time
}

func (p *Period) String() string {
	if p.start.Equal(p.end) {
		return p.startDate()
	}
	return fmt.Sprintf("%s - %s", p.startDate(), p.endDate())
}

func (p *Period) startDate() string {
	return p.start.Format(trip.DateLayout)
}

func (p *Period) endDate() string {
	return p.end.Format(trip.DateLayout)
}

// days counts the calendar days in the period, both ends included.
func (p *Period) days() int {
	return int(p.end.Sub(p.start).Hours()/24) + 1
}

// tripPeriod returns the earliest and latest record dates of t. Records need
// not be in date order. It is false when no record has a valid date.
func tripPeriod(t trip.Trip) (Period, bool) {
	var (
		p     Period
		found bool
	)

	for _, d := range t.Dates() {
		day, err := time.Parse(trip.DateLayout, d)
		if err != nil {
			continue
		}
		if !found || day.Before(p.start) {
			p.start = day
		}
		if !found || day.After(p.end) {
			p.end = day
		}
		found = true
	}

	return p, found
}
