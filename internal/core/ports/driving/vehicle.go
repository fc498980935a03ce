package driving

import "github.com/custodia-labs/patterns-cli/internal/core/domain"

// Vehicle is a product of a VehicleFactory.
// Vehicles are immutable; their spec is fixed by the factory that built them.
type Vehicle interface {
	// Make returns the manufacturer.
	Make() string

	// Model returns the model name.
	Model() string

	// Spec returns the regional specification tag.
	Spec() domain.Spec

	// Kind returns the vehicle variant.
	Kind() domain.VehicleKind

	// StartEngine reports that the engine started. It cannot fail.
	StartEngine()
}

// VehicleFactory builds a family of vehicles sharing one regional spec.
type VehicleFactory interface {
	// Region returns the market this factory builds for.
	Region() domain.Region

	// CreateCar builds a car. Empty strings are accepted.
	CreateCar(vehicleMake, model string) Vehicle

	// CreateMotorcycle builds a motorcycle. Empty strings are accepted.
	CreateMotorcycle(vehicleMake, model string) Vehicle
}

// FactoryRegistry looks up vehicle factories by region.
type FactoryRegistry interface {
	// Get returns the factory for a region.
	// Returns domain.ErrUnsupportedType for an unknown region.
	Get(region domain.Region) (VehicleFactory, error)

	// Regions returns the registered regions in display order.
	Regions() []domain.Region
}
