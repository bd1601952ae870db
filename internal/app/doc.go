// Package app wires application dependencies for the CLI.
//
// It reads Config from viper (flags, ELGAMAL_* environment, optional config
// file) and builds the scheme and high-level services from it, exposing them
// via the Wire struct for commands to use.
package app
