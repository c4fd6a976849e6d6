//go:build tools

package tools

// This file documents CLI tooling conventions.
// It is not compiled into the binary.
//
// - github.com/pressly/goose/v3/cmd/goose (migrations; tracked via the
//   go.mod tool directive)
// - github.com/matryer/moq: service-layer mocks are generated from the
//   //go:generate directives and committed, so moq is not a module
//   dependency; install it separately to regenerate.
