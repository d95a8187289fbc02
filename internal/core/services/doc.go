// Package services implements the core business logic for drop-card.
//
// Services implement the driving ports and depend only on domain types
// and driven ports. Each repository-style service reads and rewrites a
// whole collection under a single key-value store key per mutation; the
// store is the single source of truth and services hold no cached state.
package services
