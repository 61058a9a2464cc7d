// Copyright (c) 2025 The cardano-wallet developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wlog provides the shared logging backend used by every stateful
// package in the module (submission, walletcore). Pure algebra packages
// (coin, selection) stay silent, matching the teacher's split between
// logged state-machine packages and silent unit/arithmetic packages.
package wlog

import "github.com/btcsuite/btclog"

// NewDisabled returns a no-op logger a package can use as its zero-value
// default before the host calls UseLogger.
func NewDisabled() btclog.Logger {
	return btclog.Disabled
}
