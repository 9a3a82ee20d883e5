// SPDX-License-Identifier: MIT
// Package matrix — offline cost provider.
//
// FromCoordinates derives a symmetric CostMatrix from latitude/longitude pairs
// using great-circle (haversine) distance. It stands in for a road-network
// distance service when one is not available: distances in kilometres,
// durations in whole minutes at a constant average speed.

package matrix

import (
	"fmt"
	"math"
)

const (
	// earthRadiusKm is the mean Earth radius.
	earthRadiusKm = 6371.0

	// DefaultSpeedKmh is the average speed used when callers pass speed <= 0.
	DefaultSpeedKmh = 30.0
)

// Point is a WGS84 coordinate in decimal degrees.
type Point struct {
	Lat float64
	Lng float64
}

// Haversine returns the great-circle distance between a and b in kilometres.
// Complexity: O(1).
func Haversine(a, b Point) float64 {
	var (
		lat1 = a.Lat * math.Pi / 180
		lat2 = b.Lat * math.Pi / 180
		dLat = lat2 - lat1
		dLng = (b.Lng - a.Lng) * math.Pi / 180
	)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// FromCoordinates builds an n×n CostMatrix from points.
// Duration[i][j] = round(distance / speedKmh * 60) minutes.
//
// Errors: ErrEmpty for no points, ErrBadCoordinate for |lat|>90 or |lng|>180.
// Complexity: O(n²).
func FromCoordinates(points []Point, speedKmh float64) (*CostMatrix, error) {
	n := len(points)
	if n == 0 {
		return nil, validatorErrorf("FromCoordinates", ErrEmpty)
	}
	if speedKmh <= 0 {
		speedKmh = DefaultSpeedKmh
	}

	var i, j int
	for i = 0; i < n; i++ {
		p := points[i]
		if math.IsNaN(p.Lat) || math.IsNaN(p.Lng) || math.Abs(p.Lat) > 90 || math.Abs(p.Lng) > 180 {
			return nil, fmt.Errorf("FromCoordinates: point %d (%g,%g): %w", i, p.Lat, p.Lng, ErrBadCoordinate)
		}
	}

	dist, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	dur := make([][]int64, n)
	for i = 0; i < n; i++ {
		dur[i] = make([]int64, n)
	}

	var km float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			km = Haversine(points[i], points[j])
			if err = dist.Set(i, j, km); err != nil {
				return nil, err
			}
			if err = dist.Set(j, i, km); err != nil {
				return nil, err
			}
			dur[i][j] = int64(math.Round(km / speedKmh * 60))
			dur[j][i] = dur[i][j]
		}
	}

	return &CostMatrix{Distance: dist, Duration: dur}, nil
}
