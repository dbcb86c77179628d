// Package errors provides standardized error definitions for the notes
// service. All error definitions are centralized here to ensure consistency
// across the authentication core, storage layer, and HTTP handlers.
package errors
