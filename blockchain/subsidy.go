// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/dogesuite/doged/chaincfg"
	"github.com/dogesuite/doged/util"
)

const (
	// baseSubsidy is the starting subsidy amount for mined blocks under
	// the simplified reward schedule.
	baseSubsidy = 500000 * util.Coin

	// tailSubsidy is the fixed subsidy paid once the halving schedule is
	// exhausted.
	tailSubsidy = 10000 * util.Coin

	// tailSubsidyEra is the halving era at which the schedule switches to
	// the fixed tail subsidy.
	tailSubsidyEra = 6
)

// CalcBlockSubsidy returns the subsidy a block at the given height pays
// under the simplified reward schedule: the base subsidy halves every
// SubsidyHalvingInterval blocks until the tail era, after which it is a
// fixed amount forever.
//
// Before SimplifiedRewardsHeight the original chain derived each reward
// from the previous block hash, bounded by twice the scheduled amount;
// blocks in that range are only checked against MaxBlockSubsidy.
func CalcBlockSubsidy(height int32, params *chaincfg.Params) util.Amount {
	halvings := uint(height / params.SubsidyHalvingInterval)
	if halvings >= tailSubsidyEra {
		return tailSubsidy
	}
	return baseSubsidy >> halvings
}

// MaxBlockSubsidy returns the largest subsidy a block at the given height
// may pay. Past SimplifiedRewardsHeight rewards are deterministic, so the
// maximum is the scheduled amount itself; before it the random rewards
// ranged up to twice the scheduled amount.
func MaxBlockSubsidy(height int32, params *chaincfg.Params) util.Amount {
	subsidy := CalcBlockSubsidy(height, params)
	if height >= params.SimplifiedRewardsHeight {
		return subsidy
	}
	if halvings := uint(height / params.SubsidyHalvingInterval); halvings >= tailSubsidyEra {
		return subsidy
	}
	return 2 * subsidy
}
