// Package sync implements the reconciliation engine: it makes the
// positions table contents exactly equal an XML snapshot by staging the
// snapshot inside the database, deleting rows absent from staging, and
// upserting the staged rows, all within one serializable transaction.
//
// Delete-then-upsert pushes the expensive comparison into the database
// engine, bounds client memory to one snapshot's worth of rows, and makes
// the operation idempotent: a repeated run deletes nothing and changes
// nothing observable.
package sync
