// Package optrack reconstructs trading positions (options and stock) from a
// brokerage transaction export.
//
// Raw CSV rows are parsed into typed Transaction records, persisted
// idempotently to a document store keyed by a derived natural key, then read
// back through a filter and folded into Legs and Positions with exact
// decimal weighted-average open and close prices.
package optrack
