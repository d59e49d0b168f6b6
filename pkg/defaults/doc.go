// Package defaults centralizes timeout and timing constants shared across
// the suite's CLI, deployer, and server packages. Keeping them in one place
// makes the relationships between related timeouts (e.g. probe window vs.
// per-request timeout) easy to audit.
package defaults
