// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package blockchain implements doge block header validation rules.

The heart of the package is the merge-mining (auxpow) validator. A
merge-mined block does not prove work on its own header; instead a parent
chain block's coinbase commits to an aux chain merkle tree containing this
chain's block hash, and the parent header carries the actual scrypt proof
of work. CheckAuxPow walks both merkle proofs, finds the commitment inside
the parent coinbase script and checks the deterministic slot assignment
that keeps one parent block from claiming the same aux chain twice.
CheckHeaderProofOfWork then selects the preimage the rules demand - the
header's own scrypt hash for plain blocks, the parent header's for
merge-mined ones - and compares it against the target expanded from the
header's bits.

Every check is pure: the same inputs always produce the same verdict, and
failures are reported as RuleError values carrying one of the exported
ErrorCode kinds rather than aborting anything.
*/
package blockchain
