// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package wire implements the doge wire protocol primitives.

This package deals with the byte-exact serialization of the structures the
consensus core operates on: block headers with their optional merge-mining
appendix, transactions, and whole blocks. All multi-byte integers are little
endian and variable length sequences carry Bitcoin-style CompactSize
prefixes.

# Block headers

A block header always starts with a fixed 80-byte preimage which is the sole
input to both the identifier hash and the scrypt proof-of-work hash. When
bit 8 of the version is set the preimage is followed by a MsgAuxPow
appendix holding the merge-mining proof; the parent header embedded in the
appendix is serialized as a preimage only, so the encoding never recurses.

# Errors

Errors returned by this package are either the raw underlying read/write
errors or of type MessageError for malformed data such as non-canonical
CompactSize encodings and unreasonable element counts. MessageError values
describe the rejected input and propagate unchanged to callers.
*/
package wire
