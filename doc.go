// Package capgains computes realized capital gains and losses from a brokerage
// transaction history, using First-In-First-Out lot matching.
//
// The core functionalities include:
//   - Lot Matching: buys open lots per symbol, sells consume them oldest first,
//     closing whole lots or fragments of them into ClosedTrade records. Sells
//     that cannot be matched are reported and skipped.
//   - Monthly Grouping: the history is split into cumulative month buckets so
//     that every month is matched against the full history of its lots.
//   - Aggregation: realized profits split into short and long term, and per
//     symbol with a cost-weighted return percentage.
//   - Statements and Reports: month statements with income, fees and cash
//     movements, and year reports with merged fees, exported as CSV files.
//
// Statement files are decoded by the robinhood and alpaca packages. This
// package serves as the foundational logic for the `cgt` command-line tool.
package capgains
