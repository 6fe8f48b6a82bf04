//go:build tools
// +build tools

// Package tools declares tool dependencies for this module.
// The mockgen import keeps `go generate` reproducible on a fresh checkout.
package hallway

import (
	_ "go.uber.org/mock/mockgen"
)
