// Package distribution maps a parameter vector onto normalised audience splits.
package distribution

import (
	"errors"

	"gonum.org/v1/gonum/floats"
)

// ErrUndefinedDistribution is returned when no category carries positive weight.
var ErrUndefinedDistribution = errors.New("distribution undefined: category weights sum to zero or less")

// Share is one category's fraction of the whole.
type Share struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Distribution is an ordered set of shares summing to 1.
type Distribution []Share

// Get returns the share for label, if present.
func (d Distribution) Get(label string) (float64, bool) {
	for _, s := range d {
		if s.Label == label {
			return s.Value, true
		}
	}
	return 0, false
}

// Labels returns the category labels in order.
func (d Distribution) Labels() []string {
	out := make([]string, len(d))
	for i, s := range d {
		out[i] = s.Label
	}
	return out
}

// Values returns the shares in order.
func (d Distribution) Values() []float64 {
	out := make([]float64, len(d))
	for i, s := range d {
		out[i] = s.Value
	}
	return out
}

// Sum adds up all shares.
func (d Distribution) Sum() float64 {
	return floats.Sum(d.Values())
}

type weight struct {
	label string
	value float64
}

// normalize divides each weight by the total. The caller owns sign handling.
func normalize(weights []weight) (Distribution, error) {
	values := make([]float64, len(weights))
	for i, w := range weights {
		values[i] = w.value
	}

	total := floats.Sum(values)
	if total <= 0 {
		return nil, ErrUndefinedDistribution
	}
	floats.Scale(1/total, values)

	out := make(Distribution, len(weights))
	for i, w := range weights {
		out[i] = Share{Label: w.label, Value: values[i]}
	}
	return out, nil
}
