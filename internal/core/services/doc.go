// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Services report outcomes through the *slog.Logger they are constructed
// with; none of them reach for a package-level logger.
package services
