// Package app wires configuration, logging and the tour runner for the CLI.
//
// Configuration is layered: DefaultConfig, then an optional YAML file
// (LoadConfig), then command-line flags applied by the caller. Options turns
// the textual settings into typed algorithm choices and rejects unknown values.
package app
