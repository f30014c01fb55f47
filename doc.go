// Package finbook implements a multi-user, multi-profile personal
// finance tracker over flat-file storage: users and recurring
// templates live in JSON files, transactions in a CSV table.
//
// The package is organized around four stores, each owning one file:
//
//   - [UserStore] owns the users file, including credentials and the
//     per-user profile directory.
//   - [LedgerStore] owns the transaction table.
//   - [ScheduleStore] owns the recurring templates and is the sole
//     writer of materialized recurring transactions.
//   - [Backup] snapshots all of them once a month.
//
// All mutating writes go through a write-to-temp-then-rename cycle so
// a crash mid-write never corrupts the previously committed state.
// The process is single-threaded by construction; stores perform no
// locking of their own.
package finbook
