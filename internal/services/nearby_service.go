package services

import (
	"math"
	"sort"
	"time"

	"github.com/AgiAbhishek/Vendor-shop/internal/metrics"
	"github.com/AgiAbhishek/Vendor-shop/internal/models"
	"github.com/AgiAbhishek/Vendor-shop/internal/repository"
	"github.com/AgiAbhishek/Vendor-shop/internal/utils"
)

// NearbyService answers "shops within radiusKm of a point" queries with a
// bounding-box prefilter followed by exact haversine refinement.
type NearbyService struct {
	repo    repository.ShopRepository
	metrics *metrics.Metrics
}

// NewNearbyService creates a new NearbyService. Metrics may be nil.
func NewNearbyService(repo repository.ShopRepository, m *metrics.Metrics) *NearbyService {
	return &NearbyService{repo: repo, metrics: m}
}

// Nearby returns every shop within radiusKm of (lat, lng), sorted ascending
// by distance. Distances are rounded to 3 decimal places; equal distances
// keep their prefilter order. The full list is returned, no pagination.
func (s *NearbyService) Nearby(lat, lng, radiusKm float64) ([]models.ShopWithDistance, error) {
	start := time.Now()

	latMin, latMax, lngMin, lngMax := utils.BoundingBox(lat, lng, radiusKm)
	candidates, err := s.repo.RangeQuery(latMin, latMax, lngMin, lngMax)
	if err != nil {
		return nil, err
	}

	// The box admits false positives at its corners; refine with the exact
	// great-circle distance.
	results := make([]models.ShopWithDistance, 0, len(candidates))
	for _, shop := range candidates {
		d := utils.HaversineKm(lat, lng, shop.Latitude, shop.Longitude)
		if d <= radiusKm {
			results = append(results, models.ShopWithDistance{
				Shop:       shop,
				DistanceKm: math.Round(d*1000) / 1000,
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].DistanceKm < results[j].DistanceKm
	})

	if s.metrics != nil {
		s.metrics.ObserveNearby(len(candidates), len(results), time.Since(start))
	}
	return results, nil
}
