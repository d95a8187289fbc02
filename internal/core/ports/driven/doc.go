// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - KVStore: durable string key-value persistence for cards, contacts,
//     settings, and the draft slot
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - LLMService: generative text backend. Without it, follow-up drafting
//     uses deterministic templates.
//   - PromptStore: user-editable prompt templates. Without it, services
//     use embedded defaults.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
