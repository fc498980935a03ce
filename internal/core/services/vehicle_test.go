package services

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/patterns-cli/internal/core/domain"
	"github.com/custodia-labs/patterns-cli/internal/core/ports/driving"
	"github.com/custodia-labs/patterns-cli/internal/logger"
)

func newTestLogger() (*slog.Logger, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	return logger.New(buf, logger.Options{}), buf
}

func logLines(buf *bytes.Buffer) []string {
	out := strings.TrimSuffix(buf.String(), "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

func TestFactories_StampSpecAndKeepInputs(t *testing.T) {
	factories := []struct {
		factory driving.VehicleFactory
		spec    domain.Spec
		region  domain.Region
	}{
		{NewUSFactory(nil), domain.SpecUS, domain.RegionUS},
		{NewEUFactory(nil), domain.SpecEU, domain.RegionEU},
	}

	for _, f := range factories {
		t.Run(string(f.region), func(t *testing.T) {
			assert.Equal(t, f.region, f.factory.Region())

			car := f.factory.CreateCar("Ford", "Mustang")
			assert.Equal(t, "Ford", car.Make())
			assert.Equal(t, "Mustang", car.Model())
			assert.Equal(t, f.spec, car.Spec())
			assert.Equal(t, domain.VehicleKindCar, car.Kind())

			moto := f.factory.CreateMotorcycle("Ducati", "Monster")
			assert.Equal(t, "Ducati", moto.Make())
			assert.Equal(t, "Monster", moto.Model())
			assert.Equal(t, f.spec, moto.Spec())
			assert.Equal(t, domain.VehicleKindMotorcycle, moto.Kind())
		})
	}
}

func TestFactories_AcceptEmptyStrings(t *testing.T) {
	car := NewEUFactory(nil).CreateCar("", "")

	assert.Empty(t, car.Make())
	assert.Empty(t, car.Model())
	assert.Equal(t, domain.SpecEU, car.Spec())
}

func TestFactories_ReturnDistinctVehicles(t *testing.T) {
	f := NewUSFactory(nil)

	a := f.CreateCar("Ford", "Mustang")
	b := f.CreateCar("Ford", "Mustang")

	assert.NotSame(t, a, b)
}

func TestCar_StartEngine(t *testing.T) {
	log, buf := newTestLogger()

	NewUSFactory(log).CreateCar("Ford", "Mustang").StartEngine()

	assert.Equal(t, "[INFO] Ford Mustang (US Spec): Engine started\n", buf.String())
}

func TestMotorcycle_StartEngine(t *testing.T) {
	log, buf := newTestLogger()

	NewEUFactory(log).CreateMotorcycle("Ducati", "Monster").StartEngine()

	assert.Equal(t, "[INFO] Ducati Monster (EU Spec): Motor running\n", buf.String())
}

func TestStartEngine_RepeatedCallsLogIdenticalLines(t *testing.T) {
	log, buf := newTestLogger()
	moto := NewUSFactory(log).CreateMotorcycle("Harley-Davidson", "Sportster")

	const n = 5
	for i := 0; i < n; i++ {
		moto.StartEngine()
	}

	lines := logLines(buf)
	require.Len(t, lines, n)
	for _, line := range lines {
		assert.Equal(t, lines[0], line)
	}
	assert.Equal(t, domain.SpecUS, moto.Spec())
}

func TestStartEngine_NilLoggerDiscards(t *testing.T) {
	assert.NotPanics(t, func() {
		NewUSFactory(nil).CreateCar("Ford", "Mustang").StartEngine()
	})
}

func TestCreateVehicle(t *testing.T) {
	f := NewEUFactory(nil)

	car, err := CreateVehicle(f, domain.VehicleKindCar, "Volkswagen", "Golf")
	require.NoError(t, err)
	assert.IsType(t, &Car{}, car)
	assert.Equal(t, domain.SpecEU, car.Spec())

	moto, err := CreateVehicle(f, domain.VehicleKindMotorcycle, "Ducati", "Monster")
	require.NoError(t, err)
	assert.IsType(t, &Motorcycle{}, moto)
}

func TestCreateVehicle_UnknownKind(t *testing.T) {
	v, err := CreateVehicle(NewUSFactory(nil), domain.VehicleKind("truck"), "Mack", "Anthem")

	assert.Nil(t, v)
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
}

func TestDemoFleet(t *testing.T) {
	log, buf := newTestLogger()

	StartAll(DemoFleet(NewUSFactory(log), NewEUFactory(log)))

	assert.Equal(t, []string{
		"[INFO] Ford Mustang (US Spec): Engine started",
		"[INFO] Harley-Davidson Sportster (US Spec): Motor running",
		"[INFO] Volkswagen Golf (EU Spec): Engine started",
		"[INFO] Ducati Monster (EU Spec): Motor running",
	}, logLines(buf))
}

func TestStartAll_Empty(t *testing.T) {
	assert.NotPanics(t, func() { StartAll(nil) })
}
