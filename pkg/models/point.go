// Package models provides the data point value type shared by the Quiver
// pools, sequences, and codec layers.
//
// A DataPoint is an immutable value: it is constructed once, copied into
// pooled storage, and never mutated in place. Identity is by field value,
// never by storage slot.
package models

import (
	"math/rand"
	"time"
)

// DataPoint is a single immutable measurement.
//
// The timestamp is an opaque ISO-8601 string; the core never parses or
// validates it. Value may be any float64, including negative values and NaN.
type DataPoint struct {
	// ID is the record identifier
	ID uint64 `json:"id"`
	// Value is the measured quantity
	Value float64 `json:"value"`
	// Timestamp is the capture time in ISO-8601 format
	Timestamp string `json:"timestamp"`
}

// NewDataPoint constructs a data point from its three fields.
func NewDataPoint(id uint64, value float64, timestamp string) DataPoint {
	return DataPoint{
		ID:        id,
		Value:     value,
		Timestamp: timestamp,
	}
}

// NewRandomPoint generates a data point with a random ID in [1, 1000), a
// random value in [0.0, 100.0), and the current UTC time as its timestamp.
func NewRandomPoint() DataPoint {
	return DataPoint{
		ID:        uint64(rand.Intn(999)) + 1,
		Value:     rand.Float64() * 100.0,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// NewRandomPoints generates n random data points.
func NewRandomPoints(n int) []DataPoint {
	points := make([]DataPoint, n)
	for i := range points {
		points[i] = NewRandomPoint()
	}
	return points
}
