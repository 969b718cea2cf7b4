// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - ConfigStore: Application configuration
//   - SessionStore: Wizard session persistence (memory or Redis)
//   - ReceiptStore: Submission receipt persistence (memory or SQLite)
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - StepValidator: Per-step form validation. Without it every step passes.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
