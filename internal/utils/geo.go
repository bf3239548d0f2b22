package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mmcloughlin/geohash"
	"github.com/nomadbikers/ridetrack/internal/pkg/models"
)

// CalculateDistance calculates the distance between two points in kilometers
// using the Haversine formula. Coordinates outside the valid lat/lng domain
// are not validated; GPS hardware is trusted to produce valid fixes.
func CalculateDistance(p1, p2 models.RoutePoint) float64 {
	// Earth's radius in kilometers
	const earthRadius = 6371.0

	lat1 := p1.Lat * math.Pi / 180.0
	lon1 := p1.Lng * math.Pi / 180.0
	lat2 := p2.Lat * math.Pi / 180.0
	lon2 := p2.Lng * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}

// TotalDistance sums CalculateDistance over consecutive pairs of the route.
// Zero or one point yields 0. The result depends only on the sequence order,
// so streaming accumulation and batch recomputation agree.
func TotalDistance(points []models.RoutePoint) float64 {
	var total float64
	for i := 0; i < len(points)-1; i++ {
		total += CalculateDistance(points[i], points[i+1])
	}
	return total
}

// FormatDuration renders a millisecond duration as HH:MM:SS. Negative input
// clamps to zero; hours are unbounded and zero-padded to at least two digits.
func FormatDuration(millis int64) string {
	if millis < 0 {
		millis = 0
	}
	seconds := millis / 1000
	minutes := seconds / 60
	hours := minutes / 60

	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes%60, seconds%60)
}

// ParseLatLng parses a "lat,lng" encoded location string. Free-text location
// strings return ok=false.
func ParseLatLng(s string) (lat, lng float64, ok bool) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, false
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, false
	}
	lng, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, false
	}
	return lat, lng, true
}

// EncodeRegion converts a route point to a geohash cell at the given precision.
func EncodeRegion(p models.RoutePoint, precision uint) string {
	return geohash.EncodeWithPrecision(p.Lat, p.Lng, precision)
}

// RegionTrail returns the ordered, consecutively deduplicated geohash cells a
// route passes through. The tile prefetcher uses the trail as its cache
// manifest for offline map rendering.
func RegionTrail(points []models.RoutePoint, precision uint) []string {
	trail := make([]string, 0, len(points))
	var last string
	for _, p := range points {
		cell := EncodeRegion(p, precision)
		if cell == last {
			continue
		}
		trail = append(trail, cell)
		last = cell
	}
	return trail
}
