// Package app contains the core application logic. It wires the example
// registry, the deck and the catalog together, and drives them through the
// web server, the terminal presenter and the list output, decoupled from any
// specific entrypoint like a CLI.
package app
