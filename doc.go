// Package pacfolio tracks a personal ETF accumulation plan ("PAC"): periodic
// cash deposits split between a cash reserve and a fixed set of funds,
// holdings reconstructed by replaying the deposit history against the prices
// recorded at deposit time, and net-worth projections under compounding
// growth.
//
// The package is the pure engine. The pfc command in pfc/ and the
// subcommands in cmd/ provide the CLI on top of it.
package pacfolio
