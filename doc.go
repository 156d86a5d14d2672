// Package carbonscope provides the ledger engine for a small-business
// carbon accounting tool. It is designed to be local-first and auditable:
// all data lives in a single human-readable JSON file under the user's
// control.
//
// The core functionalities include:
//   - Ledger Management: an ordered, position-addressed record of emission
//     entries, supporting append, batch append and delete.
//   - Validation: required-field and type checks applied once at the
//     ingestion boundary, producing typed entries or structured errors.
//   - Derived Fields: emissions in kgCO2e computed exactly from activity
//     quantity and emission factor.
//   - Data Persistence: full-file JSON rewrite with a rolling pre-save
//     backup, and quarantine of corrupt files so the process always starts
//     in a valid state.
//   - Import/Export: CSV ingestion with enterprise-default completion, and
//     flat CSV export of the full ledger.
//   - Aggregation: totals by scope, by category and by calendar month for
//     reporting.
//
// This package serves as the foundational logic for the `cscope`
// command-line tool.
package carbonscope
