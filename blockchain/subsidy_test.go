// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"testing"

	"github.com/dogesuite/doged/chaincfg"
	"github.com/dogesuite/doged/util"
)

// TestCalcBlockSubsidy pins the deterministic reward schedule on the main
// network parameters.
func TestCalcBlockSubsidy(t *testing.T) {
	params := &chaincfg.MainNetParams

	tests := []struct {
		height int32
		want   util.Amount
	}{
		{145000, 250000 * util.Coin},
		{199999, 250000 * util.Coin},
		{200000, 125000 * util.Coin},
		{300000, 62500 * util.Coin},
		{400000, 31250 * util.Coin},
		{500000, 15625 * util.Coin},
		{600000, 10000 * util.Coin},
		{6000000, 10000 * util.Coin},
	}

	for _, test := range tests {
		got := CalcBlockSubsidy(test.height, params)
		if got != test.want {
			t.Errorf("CalcBlockSubsidy(%d): got %v, want %v",
				test.height, got, test.want)
		}
	}
}

// TestMaxBlockSubsidy ensures the pre-activation bound doubles the
// scheduled amount and collapses to it afterwards.
func TestMaxBlockSubsidy(t *testing.T) {
	params := &chaincfg.MainNetParams

	// Before the simplified rewards the miner could draw up to twice the
	// scheduled amount.
	if got, want := MaxBlockSubsidy(0, params), util.Amount(1000000*util.Coin); got != want {
		t.Errorf("MaxBlockSubsidy(0): got %v, want %v", got, want)
	}
	if got, want := MaxBlockSubsidy(100000, params), util.Amount(500000*util.Coin); got != want {
		t.Errorf("MaxBlockSubsidy(100000): got %v, want %v", got, want)
	}

	// From the activation on the bound is the deterministic reward.
	if got, want := MaxBlockSubsidy(145000, params), util.Amount(250000*util.Coin); got != want {
		t.Errorf("MaxBlockSubsidy(145000): got %v, want %v", got, want)
	}
	if got, want := MaxBlockSubsidy(700000, params), util.Amount(10000*util.Coin); got != want {
		t.Errorf("MaxBlockSubsidy(700000): got %v, want %v", got, want)
	}
}
