package domain

import "fmt"

// Spec is the regional specification tag stamped on every vehicle.
type Spec string

// Regional specification tags.
const (
	SpecUS Spec = "US Spec"
	SpecEU Spec = "EU Spec"
)

// String returns the string representation.
func (s Spec) String() string {
	return string(s)
}

// Region identifies the market a vehicle factory builds for.
type Region string

// Supported regions.
const (
	// RegionUS builds vehicles to the US specification.
	RegionUS Region = "us"

	// RegionEU builds vehicles to the EU specification.
	RegionEU Region = "eu"
)

// AllRegions returns every supported region in display order.
func AllRegions() []Region {
	return []Region{RegionUS, RegionEU}
}

// IsValid returns true if the region is recognised.
func (r Region) IsValid() bool {
	switch r {
	case RegionUS, RegionEU:
		return true
	default:
		return false
	}
}

// Spec returns the specification tag a factory for this region injects.
// Unknown regions have an empty spec.
func (r Region) Spec() Spec {
	switch r {
	case RegionUS:
		return SpecUS
	case RegionEU:
		return SpecEU
	default:
		return ""
	}
}

// String returns the string representation.
func (r Region) String() string {
	return string(r)
}

// Description returns a human-readable description of the region.
func (r Region) Description() string {
	switch r {
	case RegionUS:
		return "United States"
	case RegionEU:
		return "European Union"
	default:
		return unknownDescription
	}
}

// VehicleKind identifies a vehicle variant.
type VehicleKind string

// Vehicle variants.
const (
	VehicleKindCar        VehicleKind = "car"
	VehicleKindMotorcycle VehicleKind = "motorcycle"
)

// AllVehicleKinds returns every vehicle variant.
func AllVehicleKinds() []VehicleKind {
	return []VehicleKind{VehicleKindCar, VehicleKindMotorcycle}
}

// IsValid returns true if the kind is recognised.
func (k VehicleKind) IsValid() bool {
	return k == VehicleKindCar || k == VehicleKindMotorcycle
}

// EnginePhrase is the text a vehicle of this kind reports on start.
func (k VehicleKind) EnginePhrase() string {
	switch k {
	case VehicleKindCar:
		return "Engine started"
	case VehicleKindMotorcycle:
		return "Motor running"
	default:
		return ""
	}
}

// String returns the string representation.
func (k VehicleKind) String() string {
	return string(k)
}

// EngineStartLine formats the line a vehicle reports when its engine starts.
func EngineStartLine(vehicleMake, model string, spec Spec, kind VehicleKind) string {
	return fmt.Sprintf("%s %s (%s): %s", vehicleMake, model, spec, kind.EnginePhrase())
}
