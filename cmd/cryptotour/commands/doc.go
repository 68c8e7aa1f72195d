// Package commands defines the cryptotour CLI.
//
// Commands
//
//   - salt      Print fresh random salts (--size 256|384|512)
//   - hex       Hex-encode arguments or stdin
//   - hash      Digest arguments or stdin with SHA-256 or BLAKE3
//   - tour      Run the hashing/encryption/signing/salting/key-agreement walkthrough
//   - glossary  List or look up cryptography terms
//
// # Implementation
//
// The root command loads the YAML config (if any), applies persistent flags on
// top and builds the shared app context before any subcommand runs. Results
// go to stdout; logs go to stderr.
package commands
