package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegion_Spec(t *testing.T) {
	assert.Equal(t, SpecUS, RegionUS.Spec())
	assert.Equal(t, SpecEU, RegionEU.Spec())
	assert.Equal(t, Spec(""), Region("jp").Spec())
}

func TestRegion_IsValid(t *testing.T) {
	tests := []struct {
		region   Region
		expected bool
	}{
		{RegionUS, true},
		{RegionEU, true},
		{Region(""), false},
		{Region("US"), false},
		{Region("jp"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.region), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.region.IsValid())
		})
	}
}

func TestAllRegions(t *testing.T) {
	regions := AllRegions()
	assert.Equal(t, []Region{RegionUS, RegionEU}, regions)
	for _, r := range regions {
		assert.True(t, r.IsValid())
		assert.NotEqual(t, unknownDescription, r.Description())
	}
}

func TestSpec_String(t *testing.T) {
	assert.Equal(t, "US Spec", SpecUS.String())
	assert.Equal(t, "EU Spec", SpecEU.String())
}

func TestVehicleKind_EnginePhrase(t *testing.T) {
	assert.Equal(t, "Engine started", VehicleKindCar.EnginePhrase())
	assert.Equal(t, "Motor running", VehicleKindMotorcycle.EnginePhrase())
	assert.Empty(t, VehicleKind("truck").EnginePhrase())
}

func TestVehicleKind_IsValid(t *testing.T) {
	for _, k := range AllVehicleKinds() {
		assert.True(t, k.IsValid(), k.String())
	}
	assert.False(t, VehicleKind("truck").IsValid())
}

func TestEngineStartLine(t *testing.T) {
	assert.Equal(t,
		"Ford Mustang (US Spec): Engine started",
		EngineStartLine("Ford", "Mustang", SpecUS, VehicleKindCar))
	assert.Equal(t,
		"Ducati Monster (EU Spec): Motor running",
		EngineStartLine("Ducati", "Monster", SpecEU, VehicleKindMotorcycle))
	assert.Equal(t,
		"  (EU Spec): Engine started",
		EngineStartLine("", "", SpecEU, VehicleKindCar))
}
