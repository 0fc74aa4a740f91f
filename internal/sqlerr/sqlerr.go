// Package sqlerr translates database driver errors.
//
// It parses SQLSTATE codes from the Postgres driver and converts them
// into application errors, e.g. a unique violation on tags.name becomes
// a 409 with a message a client can show as-is. The schema carries the
// integrity rules (unique names, required foreign keys, rating range);
// this package is where those rules turn into HTTP semantics.
package sqlerr
