package services

import (
	"fmt"
	"log/slog"

	"github.com/custodia-labs/patterns-cli/internal/core/domain"
	"github.com/custodia-labs/patterns-cli/internal/core/ports/driving"
)

// Ensure the factories and vehicles implement the interfaces.
var (
	_ driving.VehicleFactory = (*USFactory)(nil)
	_ driving.VehicleFactory = (*EUFactory)(nil)
	_ driving.Vehicle        = (*Car)(nil)
	_ driving.Vehicle        = (*Motorcycle)(nil)
)

// vehicle holds the state shared by every variant.
// It is unexported and has no StartEngine, so it is never a driving.Vehicle
// on its own.
type vehicle struct {
	make  string
	model string
	spec  domain.Spec
	log   *slog.Logger
}

// Make returns the manufacturer.
func (v *vehicle) Make() string { return v.make }

// Model returns the model name.
func (v *vehicle) Model() string { return v.model }

// Spec returns the regional specification tag.
func (v *vehicle) Spec() domain.Spec { return v.spec }

func (v *vehicle) report(kind domain.VehicleKind) {
	v.log.Info(domain.EngineStartLine(v.make, v.model, v.spec, kind))
}

// Car is a four-wheeled vehicle.
type Car struct {
	vehicle
}

// Kind returns domain.VehicleKindCar.
func (c *Car) Kind() domain.VehicleKind { return domain.VehicleKindCar }

// StartEngine logs "<make> <model> (<spec>): Engine started".
func (c *Car) StartEngine() { c.report(domain.VehicleKindCar) }

// Motorcycle is a two-wheeled vehicle.
type Motorcycle struct {
	vehicle
}

// Kind returns domain.VehicleKindMotorcycle.
func (m *Motorcycle) Kind() domain.VehicleKind { return domain.VehicleKindMotorcycle }

// StartEngine logs "<make> <model> (<spec>): Motor running".
func (m *Motorcycle) StartEngine() { m.report(domain.VehicleKindMotorcycle) }

// regionalFactory stamps one regional spec on everything it builds.
type regionalFactory struct {
	region domain.Region
	log    *slog.Logger
}

func newRegionalFactory(region domain.Region, log *slog.Logger) regionalFactory {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return regionalFactory{region: region, log: log}
}

// Region returns the market this factory builds for.
func (f regionalFactory) Region() domain.Region { return f.region }

// CreateCar builds a car to this factory's spec.
func (f regionalFactory) CreateCar(vehicleMake, model string) driving.Vehicle {
	return &Car{vehicle: f.build(vehicleMake, model)}
}

// CreateMotorcycle builds a motorcycle to this factory's spec.
func (f regionalFactory) CreateMotorcycle(vehicleMake, model string) driving.Vehicle {
	return &Motorcycle{vehicle: f.build(vehicleMake, model)}
}

func (f regionalFactory) build(vehicleMake, model string) vehicle {
	return vehicle{
		make:  vehicleMake,
		model: model,
		spec:  f.region.Spec(),
		log:   f.log,
	}
}

// USFactory builds vehicles to the US specification.
type USFactory struct {
	regionalFactory
}

// NewUSFactory creates a factory whose vehicles log through log.
// A nil logger discards engine reports.
func NewUSFactory(log *slog.Logger) *USFactory {
	return &USFactory{regionalFactory: newRegionalFactory(domain.RegionUS, log)}
}

// EUFactory builds vehicles to the EU specification.
type EUFactory struct {
	regionalFactory
}

// NewEUFactory creates a factory whose vehicles log through log.
// A nil logger discards engine reports.
func NewEUFactory(log *slog.Logger) *EUFactory {
	return &EUFactory{regionalFactory: newRegionalFactory(domain.RegionEU, log)}
}

// CreateVehicle builds a vehicle of the given kind from factory.
// Returns domain.ErrUnsupportedType for an unknown kind.
func CreateVehicle(
	factory driving.VehicleFactory,
	kind domain.VehicleKind,
	vehicleMake, model string,
) (driving.Vehicle, error) {
	switch kind {
	case domain.VehicleKindCar:
		return factory.CreateCar(vehicleMake, model), nil
	case domain.VehicleKindMotorcycle:
		return factory.CreateMotorcycle(vehicleMake, model), nil
	default:
		return nil, fmt.Errorf("vehicle kind %q: %w", kind, domain.ErrUnsupportedType)
	}
}

// DemoFleet builds one car and one motorcycle from each factory.
func DemoFleet(us, eu driving.VehicleFactory) []driving.Vehicle {
	return []driving.Vehicle{
		us.CreateCar("Ford", "Mustang"),
		us.CreateMotorcycle("Harley-Davidson", "Sportster"),
		eu.CreateCar("Volkswagen", "Golf"),
		eu.CreateMotorcycle("Ducati", "Monster"),
	}
}

// StartAll starts every vehicle in order.
func StartAll(vehicles []driving.Vehicle) {
	for _, v := range vehicles {
		v.StartEngine()
	}
}
