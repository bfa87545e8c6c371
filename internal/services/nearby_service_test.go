package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AgiAbhishek/Vendor-shop/internal/models"
	"github.com/AgiAbhishek/Vendor-shop/internal/utils"
)

func seedShop(repo *fakeShopRepo, name string, lat, lng float64) models.Shop {
	shop := models.Shop{
		ID:        uuid.New(),
		VendorID:  uuid.New(),
		Name:      name,
		OwnerName: "owner",
		Latitude:  lat,
		Longitude: lng,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	repo.shops = append(repo.shops, shop)
	return shop
}

func TestNearbyReturnsShopAtCenterWithZeroDistance(t *testing.T) {
	repo := &fakeShopRepo{}
	seedShop(repo, "MG Road Grocers", 12.9716, 77.5946)

	svc := NewNearbyService(repo, nil)
	results, err := svc.Nearby(12.9716, 77.5946, 5)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "MG Road Grocers", results[0].Name)
	assert.Equal(t, 0.0, results[0].DistanceKm)
}

func TestNearbyExcludesShopBeyondRadius(t *testing.T) {
	repo := &fakeShopRepo{}
	seedShop(repo, "near", 0.018, 0) // ~2 km north
	seedShop(repo, "far", 0.09, 0)   // ~10 km north

	svc := NewNearbyService(repo, nil)
	results, err := svc.Nearby(0, 0, 5)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "near", results[0].Name)
}

func TestNearbyEveryResultWithinRadius(t *testing.T) {
	repo := &fakeShopRepo{}
	for i := 0; i < 30; i++ {
		seedShop(repo, "shop", 12.9+float64(i)*0.01, 77.55+float64(i)*0.007)
	}

	svc := NewNearbyService(repo, nil)
	results, err := svc.Nearby(12.9716, 77.5946, 5)

	require.NoError(t, err)
	require.NotEmpty(t, results)
	for _, r := range results {
		d := utils.HaversineKm(12.9716, 77.5946, r.Latitude, r.Longitude)
		assert.LessOrEqual(t, d, 5.0+1e-6)
	}
}

func TestNearbySortedAscendingWithRoundedDistances(t *testing.T) {
	repo := &fakeShopRepo{}
	seedShop(repo, "third", 0.03, 0)
	seedShop(repo, "first", 0, 0.01)
	seedShop(repo, "second", 0.02, 0)

	svc := NewNearbyService(repo, nil)
	results, err := svc.Nearby(0, 0, 5)

	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, []string{"first", "second", "third"},
		[]string{results[0].Name, results[1].Name, results[2].Name})
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i].DistanceKm, results[i-1].DistanceKm)
	}

	// 0.01 degrees of longitude at the equator is 1.1119 km; rounded to 3dp.
	assert.Equal(t, 1.112, results[0].DistanceKm)
}

func TestNearbyEqualDistancesKeepPrefilterOrder(t *testing.T) {
	repo := &fakeShopRepo{}
	// Symmetric east/west of the center: identical distances.
	seedShop(repo, "west", 0, -0.01)
	seedShop(repo, "east", 0, 0.01)
	seedShop(repo, "center", 0, 0)

	svc := NewNearbyService(repo, nil)
	results, err := svc.Nearby(0, 0, 5)

	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "center", results[0].Name)
	// The tie keeps insertion (prefilter) order.
	assert.Equal(t, "west", results[1].Name)
	assert.Equal(t, "east", results[2].Name)
	assert.Equal(t, results[1].DistanceKm, results[2].DistanceKm)
}

func TestNearbyQueriesPrefilterBox(t *testing.T) {
	repo := &fakeShopRepo{}
	svc := NewNearbyService(repo, nil)

	_, err := svc.Nearby(12.9716, 77.5946, 5)
	require.NoError(t, err)

	latMin, latMax, lngMin, lngMax := utils.BoundingBox(12.9716, 77.5946, 5)
	require.Len(t, repo.rangeCalls, 1)
	assert.Equal(t, [4]float64{latMin, latMax, lngMin, lngMax}, repo.rangeCalls[0])
}

func TestNearbyEmptyBoxReturnsEmptySlice(t *testing.T) {
	repo := &fakeShopRepo{}
	svc := NewNearbyService(repo, nil)

	results, err := svc.Nearby(50, 50, 5)
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}
