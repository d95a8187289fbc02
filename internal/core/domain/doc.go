// Package domain defines the core business entities for drop-card.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Card: A user-authored digital business card
//   - Contact: A record of a person the user met
//   - Settings: The single process-wide preferences record
//   - FollowUpRequest/FollowUpResult: Follow-up message generation
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
