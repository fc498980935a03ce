// Command vehicles demonstrates the abstract factory pattern with
// regional vehicle factories.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/patterns-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/patterns-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/patterns-cli/internal/core/services"
)

func main() {
	cli.SetBuilder(build)
	if err := cli.ExecuteVehicles(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func build(opts cli.Options) (*cli.Services, error) {
	configStore, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)

	log, level, err := cli.NewLogger(settingsService, opts.Stderr)
	if err != nil {
		return nil, err
	}

	return &cli.Services{
		Settings: settingsService,
		Factories: services.NewFactoryRegistry(
			services.NewUSFactory(log),
			services.NewEUFactory(log),
		),
		Logger: log,
		Level:  level,
	}, nil
}
