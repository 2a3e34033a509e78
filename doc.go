// Package accrual maintains per-account transaction ledgers and computes simple
// daily-accrual interest over a range of dates.
//
// The core functionalities include:
//   - Ledger: an append-only record of credits, debits and interest credits per
//     account, answering balance-as-of-date and date range queries.
//   - Rules: interest rules keyed by effective date, answering which annual rate
//     applies on a given day.
//   - Engine: a stateless calculator that splits a date range into periods of
//     constant balance and rate and accrues interest on a fixed 365-day year.
//   - Bank: the orchestrator that validates commands, numbers transactions, builds
//     monthly statements and posts interest.
//   - Data exchange: JSONL ledgers, YAML rule seeds and JSON rate feeds.
//
// All amounts and rates are exact decimals; only the final interest of a range is
// rounded, half-up to 2 decimal places.
//
// This package serves as the foundational logic for the `acc` command-line tool.
package accrual
