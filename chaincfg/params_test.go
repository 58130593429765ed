// Copyright (c) 2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"testing"
	"time"
)

// TestTargetTimespan checks the height-gated retargeting timespan on all
// networks: it only ever changes at the single transition height.
func TestTargetTimespan(t *testing.T) {
	tests := []struct {
		params *Params
		before time.Duration
	}{
		{&MainNetParams, 4 * time.Hour},
		{&TestNetParams, 4 * time.Hour},
		{&RegressionNetParams, time.Second},
	}

	for _, test := range tests {
		p := test.params
		transition := p.TargetTimespan60Height

		if got := p.TargetTimespan(0); got != test.before {
			t.Errorf("%s: timespan at 0: got %v, want %v", p.Name,
				got, test.before)
		}
		if got := p.TargetTimespan(transition - 1); got != test.before {
			t.Errorf("%s: timespan before transition: got %v, want %v",
				p.Name, got, test.before)
		}
		if got := p.TargetTimespan(transition); got != 60*time.Second {
			t.Errorf("%s: timespan at transition: got %v, want 60s",
				p.Name, got)
		}

		// Constant on both sides of the transition height.
		prev := p.TargetTimespan(0)
		for _, h := range []int32{transition - 1, transition, transition + 1, 1 << 30} {
			cur := p.TargetTimespan(h)
			if h != transition && cur != prev {
				t.Errorf("%s: timespan changed from %v to %v at %d",
					p.Name, prev, cur, h)
			}
			prev = cur
		}
	}
}

// TestCoinbaseMaturity checks the height-gated coinbase maturity.
func TestCoinbaseMaturity(t *testing.T) {
	tests := []struct {
		params *Params
		before uint32
	}{
		{&MainNetParams, 30},
		{&TestNetParams, 30},
		{&RegressionNetParams, 60},
	}

	for _, test := range tests {
		p := test.params
		transition := p.CoinbaseMaturity240Height

		if got := p.CoinbaseMaturity(transition - 1); got != test.before {
			t.Errorf("%s: maturity before transition: got %d, want %d",
				p.Name, got, test.before)
		}
		if got := p.CoinbaseMaturity(transition); got != 240 {
			t.Errorf("%s: maturity at transition: got %d, want 240",
				p.Name, got)
		}
	}
}

// TestDifficultyAdjustmentInterval checks the derived retarget interval
// around the timespan transition on mainnet.
func TestDifficultyAdjustmentInterval(t *testing.T) {
	p := &MainNetParams

	// 4 hours of one-minute blocks.
	if got := p.DifficultyAdjustmentInterval(0); got != 240 {
		t.Errorf("interval at 0: got %d, want 240", got)
	}
	// Digishield: every block.
	if got := p.DifficultyAdjustmentInterval(p.TargetTimespan60Height); got != 1 {
		t.Errorf("interval at transition: got %d, want 1", got)
	}
}

// TestMainNetConsensusLiterals pins the consensus-critical literal values
// of the main network.
func TestMainNetConsensusLiterals(t *testing.T) {
	p := &MainNetParams

	if p.AuxPowChainID != 0x0062 {
		t.Errorf("AuxPowChainID: got %#x, want 0x0062", p.AuxPowChainID)
	}
	if !p.StrictChainID {
		t.Error("StrictChainID: got false, want true")
	}
	if p.TargetTimePerBlock != time.Minute {
		t.Errorf("TargetTimePerBlock: got %v, want 1m", p.TargetTimePerBlock)
	}
	if p.DigishieldHeight != 145000 || p.SimplifiedRewardsHeight != 145000 {
		t.Errorf("digishield/simplified rewards heights: got %d/%d, want 145000",
			p.DigishieldHeight, p.SimplifiedRewardsHeight)
	}
	if p.DisallowLegacyBlocksHeight != 371337 {
		t.Errorf("DisallowLegacyBlocksHeight: got %d, want 371337",
			p.DisallowLegacyBlocksHeight)
	}

	// PowLimit is (2^256 - 1) >> 20.
	wantBits := 256 - 20
	if got := p.PowLimit.BitLen(); got != wantBits {
		t.Errorf("PowLimit bit length: got %d, want %d", got, wantBits)
	}
}
