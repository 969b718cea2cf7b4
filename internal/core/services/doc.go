// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The wizard transitions themselves are pure functions in the domain
// package; services load a session, apply one transition and save it.
package services
