package utils

import "math"

const earthRadiusKm = 6371.0

// BoundingBox calculates a degree rectangle around (lat, lng) that contains
// every point within radiusKm. It is a prefilter: corners of the box can lie
// outside the circle, so callers must refine candidates with HaversineKm.
func BoundingBox(lat, lng, radiusKm float64) (latMin, latMax, lngMin, lngMax float64) {
	latDelta := radiusKm / 111.0

	cosLat := math.Cos(lat * math.Pi / 180.0)
	var lngDelta float64
	if math.Abs(cosLat) < 1e-6 {
		// Longitude degrees collapse toward the poles; avoid dividing by ~zero.
		lngDelta = radiusKm / 111.0
	} else {
		lngDelta = radiusKm / (111.320 * cosLat)
	}

	return lat - latDelta, lat + latDelta, lng - lngDelta, lng + lngDelta
}

// HaversineKm calculates the great-circle distance in kilometers between two
// points using the Haversine formula.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180.0
	dLng := (lng2 - lng1) * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180.0)*math.Cos(lat2*math.Pi/180.0)*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	// Float error can push a just past 1 for near-antipodal points, which
	// would take Sqrt(1-a) out of its domain.
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}
