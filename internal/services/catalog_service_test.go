package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"voltdrive/internal/inventory"
	"voltdrive/internal/models"
)

type fleetRepo struct {
	stubVehicleRepo
	fleet []models.Vehicle
}

func (r *fleetRepo) List(ctx context.Context) ([]models.Vehicle, error) {
	return r.fleet, nil
}

func catalogFixture() []models.Vehicle {
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	fleet := make([]models.Vehicle, 5)
	makes := []string{"Stellar", "Aurora", "Comet", "Stellar", "Nova"}
	for i := range fleet {
		fleet[i] = models.Vehicle{
			ID:        primitive.NewObjectID(),
			Make:      makes[i],
			Model:     "EX",
			Year:      2023 + i%3,
			Specs:     models.VehicleSpecs{Range: "300 miles", Battery: "80 kWh"},
			CreatedAt: base.AddDate(0, 0, i),
		}
	}
	return fleet
}

func TestListVehiclesPagination(t *testing.T) {
	repo := &fleetRepo{fleet: catalogFixture()}
	svc := NewCatalogService(repo, testLogger(t))

	page, total, err := svc.ListVehicles(context.Background(), ListParams{Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total, "total counts the filtered set, not the page")
	assert.Len(t, page, 2)

	page, _, err = svc.ListVehicles(context.Background(), ListParams{Page: 3, PageSize: 2})
	require.NoError(t, err)
	assert.Len(t, page, 1)

	page, total, err = svc.ListVehicles(context.Background(), ListParams{Page: 9, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Empty(t, page)
}

func TestListVehiclesFilteredTotal(t *testing.T) {
	repo := &fleetRepo{fleet: catalogFixture()}
	svc := NewCatalogService(repo, testLogger(t))

	page, total, err := svc.ListVehicles(context.Background(), ListParams{
		Filters:  inventory.Filters{Make: inventory.Exactly("Stellar")},
		Page:     1,
		PageSize: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, page, 2)
}

func TestListVehiclesUnpagedReturnsAll(t *testing.T) {
	repo := &fleetRepo{fleet: catalogFixture()}
	svc := NewCatalogService(repo, testLogger(t))

	page, total, err := svc.ListVehicles(context.Background(), ListParams{})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, page, 5)
}

func TestFilterMetadataFromSnapshot(t *testing.T) {
	repo := &fleetRepo{fleet: catalogFixture()}
	svc := NewCatalogService(repo, testLogger(t))

	meta, err := svc.FilterMetadata(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Aurora", "Comet", "Nova", "Stellar"}, meta.Makes)
}
