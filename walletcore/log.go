// Copyright (c) 2025 The cardano-wallet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package walletcore

import (
	"github.com/btcsuite/btclog"
	"github.com/mariszo/cardano-wallet/internal/wlog"
)

// log is this package's logging backend, following the teacher's
// per-package log.go convention.
var log = wlog.NewDisabled()

// UseLogger sets the package-wide logger used by the facade.
func UseLogger(logger btclog.Logger) {
	log = logger
}
