// Package tour runs the demonstration: a fixed, linear walk through hashing,
// encryption, signing, password salting and key agreement.
//
// Each section prints what it does to the Runner's writer and returns a typed
// result collected in a Report. Sections always run in the order listed by
// AllSections, whatever order the caller names them in. The first error stops
// the run; nothing is retried.
package tour
