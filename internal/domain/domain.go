// Package domain holds the persisted entity types.
//
// These mirror the relational schema one to one. Response shaping
// (flattened tag/creator names, password redaction) lives in the
// handler package, not here.
package domain
