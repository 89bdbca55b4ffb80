// Package registry is the grouping index for example units.
//
// Example packages register their examples under human-readable group labels
// through the Module interface. The registry keeps groups in registration
// order and examples in the order they were given, and hands the same
// immutable *unit.Example values to every consumer: the deck composer and
// the catalog composer both read from it, neither writes to it.
//
// One Registry lives for the whole process; it is created at startup and
// injected wherever examples are needed. There is no removal.
package registry
