// SPDX-License-Identifier: MPL-2.0

// Package launch executes a resolved game as a child process.
//
// Execution is modeled as an injected capability: the Runner interface
// takes an argument vector, an environment overlay, and an optional
// working directory, and reports the child's exit code. NativeRunner is
// the os/exec implementation; tests substitute a fake.
//
// The package does not supervise the child after launch and supports one
// launch at a time.
package launch
