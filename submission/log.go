// Copyright (c) 2025 The cardano-wallet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package submission

import (
	"github.com/btcsuite/btclog"
	"github.com/mariszo/cardano-wallet/internal/wlog"
)

// log is this package's logging backend, following the teacher's
// wtxmgr/wallet convention of a package-level btclog.Logger defaulting to
// disabled until the host wires one in via UseLogger.
var log = wlog.NewDisabled()

// UseLogger sets the package-wide logger used by the submission store's
// state transitions.
func UseLogger(logger btclog.Logger) {
	log = logger
}
