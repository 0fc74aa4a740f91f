// Package repository handles all interactions with the database.
//
// It contains the raw SQL and methods to fetch, persist, or update
// rows, abstracting SQL away from the service layer. Every method
// takes a database.Querier so the same code runs against the pool for
// reads and against the request transaction for writes. Driver errors
// leave this package wrapped but raw; the global error handler
// normalizes them through sqlerr.
package repository
