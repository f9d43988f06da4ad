// Package banklet implements a personal bank ledger built from bank export
// files.
//
// The ledger persists three ground-truth tables (transactions, recipient
// mappings, metadata) as flat CSV files and re-derives three views from them
// on every run: a coalesced table where user overrides win over imported
// values, a distributed table where recurring amounts are spread over
// months, and a running balance history.
//
// Imports append export rows verbatim: re-importing the same export file
// creates duplicate transactions. The tool does not fingerprint rows.
package banklet
