// Package hcl provides the concrete HCL implementation of config.Loader.
// It is responsible for finding and parsing slide documents, evaluating
// their expressions, and translating them into the format-agnostic model.
package hcl
