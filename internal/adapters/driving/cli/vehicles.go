package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/patterns-cli/internal/core/domain"
	"github.com/custodia-labs/patterns-cli/internal/core/services"
)

// vehiclesCmd is the root of the vehicles program.
var vehiclesCmd = &cobra.Command{
	Use:   "vehicles",
	Short: "Abstract factory demonstration",
	Long: `Build a car and a motorcycle from both the US and the EU factory and
start their engines.

Each factory stamps its regional spec on every vehicle it builds, so the
same request yields a different product depending on the factory chosen.`,
	Args:              cobra.NoArgs,
	PersistentPreRunE: setup,
	SilenceUsage:      true,
	SilenceErrors:     true,
	RunE:              runVehicles,
}

var vehiclesBuildCmd = &cobra.Command{
	Use:   "build [region] [kind] [make] [model]",
	Short: "Build one vehicle and start it",
	Long: `Build a single vehicle from the factory for a region and start its engine.

Regions: us, eu
Kinds:   car, motorcycle`,
	Args: cobra.ExactArgs(4),
	RunE: runVehiclesBuild,
}

var vehiclesRegionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "List factory regions",
	Args:  cobra.NoArgs,
	RunE:  runVehiclesRegions,
}

func init() {
	addPersistentFlags(vehiclesCmd)
	vehiclesCmd.AddCommand(vehiclesBuildCmd)
	vehiclesCmd.AddCommand(vehiclesRegionsCmd)
	vehiclesCmd.AddCommand(newVersionCmd("vehicles"))
	vehiclesCmd.AddCommand(newSettingsCmd("vehicles"))
}

// ExecuteVehicles runs the vehicles program.
func ExecuteVehicles() error {
	return vehiclesCmd.Execute()
}

func runVehicles(_ *cobra.Command, _ []string) error {
	if factoryRegistry == nil {
		return errors.New("vehicle factories not configured")
	}

	us, err := factoryRegistry.Get(domain.RegionUS)
	if err != nil {
		return fmt.Errorf("failed to get factory: %w", err)
	}
	eu, err := factoryRegistry.Get(domain.RegionEU)
	if err != nil {
		return fmt.Errorf("failed to get factory: %w", err)
	}

	services.StartAll(services.DemoFleet(us, eu))
	return nil
}

func runVehiclesBuild(_ *cobra.Command, args []string) error {
	if factoryRegistry == nil {
		return errors.New("vehicle factories not configured")
	}

	region := domain.Region(strings.ToLower(args[0]))
	kind := domain.VehicleKind(strings.ToLower(args[1]))

	factory, err := factoryRegistry.Get(region)
	if err != nil {
		return fmt.Errorf("failed to get factory: %w", err)
	}

	vehicle, err := services.CreateVehicle(factory, kind, args[2], args[3])
	if err != nil {
		return fmt.Errorf("failed to build vehicle: %w", err)
	}

	vehicle.StartEngine()
	return nil
}

func runVehiclesRegions(cmd *cobra.Command, _ []string) error {
	if factoryRegistry == nil {
		return errors.New("vehicle factories not configured")
	}

	cmd.Println("Factory regions:")
	for _, region := range factoryRegistry.Regions() {
		cmd.Printf("  %-4s %s (%s)\n", region, region.Spec(), region.Description())
	}
	return nil
}
