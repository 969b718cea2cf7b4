// Package redis provides a Redis-backed SessionStore so several portal
// instances can serve the same applicant.
//
// Sessions are stored as JSON strings under "portal:session:<id>" with the
// configured TTL, refreshed on every save.
package redis
