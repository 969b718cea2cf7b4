// Package domain defines the core business entities for the benefits portal.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies beyond UUID generation and defines the
// fundamental types:
//
//   - Service: A catalog entry describing a benefit service
//   - Category: The closed set of catalog categories
//   - ApplicationForm: The free-text values captured by the wizard
//   - Step: The closed set of wizard steps
//   - Session: The explicit, serializable state of one application
//   - Receipt: A PII-free record of a submitted application
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. All other packages depend on
// domain, never the reverse. Session transitions are pure functions so
// they can be tested without any rendering environment.
//
// # Import Rules
//
//   - Can Import: Standard library, github.com/google/uuid
//   - Cannot Import: Any internal/ package
package domain
