// Package bankroll keeps a local-first ledger of bets and derives the
// bankroll statistics from it.
//
// The core functionalities include:
//   - Bet records: immutable values holding date, odds, stake and result,
//     with exact decimal arithmetic for the profit of each bet.
//   - Ledger: the newest-first sequence of bets plus the initial bankroll.
//   - Summary: a stateless derivation of total stake, profit, ROI and
//     current bankroll from a ledger.
//   - Form: validation of raw user input into a new bet.
//   - Store: the controller owning the ledger, writing every mutation
//     through to a key-value store (see package kv).
//
// This package serves as the foundation of the `bets` command-line tool.
package bankroll
