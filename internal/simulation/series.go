package simulation

import "time"

// Point is a single day of simulated engagement.
type Point struct {
	Date       time.Time `json:"date"`
	Engagement int       `json:"engagement"`
	IsForecast bool      `json:"is_forecast"`
}

// Series is ordered by date; all historical points precede all forecast points.
type Series []Point

// Historical returns the points observed before today.
func (s Series) Historical() Series {
	out := make(Series, 0, len(s))
	for _, p := range s {
		if !p.IsForecast {
			out = append(out, p)
		}
	}
	return out
}

// Forecast returns the projected points from today onwards.
func (s Series) Forecast() Series {
	out := make(Series, 0, len(s))
	for _, p := range s {
		if p.IsForecast {
			out = append(out, p)
		}
	}
	return out
}

// Values extracts the engagement values in order.
func (s Series) Values() []int {
	out := make([]int, len(s))
	for i, p := range s {
		out[i] = p.Engagement
	}
	return out
}
