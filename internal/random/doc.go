// Package random produces cryptographically secure salts.
//
// Salt sizes are a closed set (SaltSize) mapping common security strengths
// to byte counts:
//
//   - Bits256 -> 32 bytes (default)
//   - Bits384 -> 48 bytes
//   - Bits512 -> 64 bytes
//
// # Errors
//
// ErrInvalidSaltSize is returned for values outside that set. A failed or
// short read from the entropy source is reported as ErrEntropy and is never
// retried; callers should treat it as fatal.
package random
