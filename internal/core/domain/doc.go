// Package domain defines the core entities for the patterns programs.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Book: A catalog entry, identified by its title
//   - Region: A market a vehicle factory builds for, and its spec tag
//   - VehicleKind: The vehicle variants a factory can produce
//   - AppSettings: Logging configuration shared by both programs
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
