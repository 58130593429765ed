// Package chaincfg defines chain configuration parameters.
//
// In addition to the main doge network, which is intended for the transfer
// of monetary value, there also exists a test network and a regression test
// network which are frequently useful for testing and development purposes.
//
// The testnet shares its merged-mining chain identifier with the main
// network but relaxes the strict chain ID rule, and the regression test
// network lowers the digishield, legacy-block cutoff and BIP65/BIP66
// activation heights so those rules can be exercised on a short chain.
//
// For library packages, chaincfg provides the ability to look up all the
// parameters of a network by value so code can be tested against any
// network. For main packages, a process-wide active network is installed
// once at startup via SelectParams and read through ActiveParams.
package chaincfg
