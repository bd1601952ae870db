// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (group parameters, keys, ciphertexts) and contracts
// (interfaces) only.
package domain
