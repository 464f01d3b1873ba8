//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package env implements the global environment for the argo
// primitives.
package env

import (
	"crypto/rand"
	"io"
)

// Config defines the global system configuration. It configures
// operation for all argo modules. Config must not be modified after
// being passed to any module. It is safe for concurrent use by
// multiple modules as they do not modify it.
type Config struct {
	Rand io.Reader
}

// GetRandom returns the source of entropy for labels, keys, and
// other cryptography operations.
func (config *Config) GetRandom() io.Reader {
	if config.Rand != nil {
		return config.Rand
	}
	return rand.Reader
}
