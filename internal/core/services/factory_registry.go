package services

import (
	"fmt"

	"github.com/custodia-labs/patterns-cli/internal/core/domain"
	"github.com/custodia-labs/patterns-cli/internal/core/ports/driving"
)

// Ensure FactoryRegistry implements the interface.
var _ driving.FactoryRegistry = (*FactoryRegistry)(nil)

// FactoryRegistry maps regions to the factories that build for them.
type FactoryRegistry struct {
	factories map[domain.Region]driving.VehicleFactory
}

// NewFactoryRegistry creates a registry holding the given factories,
// keyed by the region each reports. A later factory for the same region
// replaces an earlier one.
func NewFactoryRegistry(factories ...driving.VehicleFactory) *FactoryRegistry {
	r := &FactoryRegistry{
		factories: make(map[domain.Region]driving.VehicleFactory, len(factories)),
	}
	for _, f := range factories {
		r.factories[f.Region()] = f
	}
	return r
}

// Get returns the factory for a region.
func (r *FactoryRegistry) Get(region domain.Region) (driving.VehicleFactory, error) {
	if f, ok := r.factories[region]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("region %q: %w", region, domain.ErrUnsupportedType)
}

// Regions returns the registered regions in display order.
func (r *FactoryRegistry) Regions() []domain.Region {
	regions := make([]domain.Region, 0, len(r.factories))
	for _, region := range domain.AllRegions() {
		if _, ok := r.factories[region]; ok {
			regions = append(regions, region)
		}
	}
	return regions
}
