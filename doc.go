// Package barista provides the transactional core of a small beverage
// vendor's point of sale: recipes, ingredient inventory, an append-only
// sales ledger, and the sale processing that ties them together.
//
// The core functionalities include:
//   - Recipe Catalog: a read-only mapping from drink to selling price and
//     per-unit ingredient consumption.
//   - Inventory Store: stock level and unit cost for each tracked
//     ingredient, loaded as a snapshot and overwritten whole on each sale.
//   - Sales Ledger: an immutable, chronological record of completed sales,
//     the single source of truth for all reporting.
//   - Sale Processing: the validate-then-commit routine that turns a
//     (drink, quantity) request into an inventory debit, a ledger row, and
//     a revenue/cost/profit result. A sale that would drive any stock
//     negative is rejected whole, leaving both tables untouched.
//   - Reporting: pure aggregations over the ledger (daily summary,
//     historical summary with per-drink breakdown) and plain tabular
//     exports (CSV, XLSX).
//
// This package serves as the foundational logic for the `till` command-line
// tool; the presentation layer only ever goes through the Register surface.
package barista
