// Package skybonds computes which bond lots a trader should buy on a primary
// market to get the best income at the end of the trading period.
//
// The core functionalities include:
//   - Lot Factory: creating immutable lots from issuance parameters, deriving
//     the lot price and the per-bond overpayment with exact decimal math.
//   - Market Registry: recording the lots issued during the issuance period,
//     enforcing the day range and the number of lots per day, and evaluating
//     the income of a lot at maturity.
//   - Trader: a budget constrained buyer that ranks lots by income and buys
//     greedily what it can afford.
//   - Serialization: the line based text format used on the standard input
//     and output of the `sky` command-line tool.
//
// Every run is a single batch computation over a closed set of lots: nothing
// is persisted and nothing is shared between runs.
package skybonds
