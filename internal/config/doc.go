// Package config defines the format-agnostic model of a slide deck, along
// with the Loader interface implemented by concrete slide formats.
//
// The model carries only what the documents say: titles, notes and example
// references by name. Resolving references against the example registry is
// the application's job.
package config
