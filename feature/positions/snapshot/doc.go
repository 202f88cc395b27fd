// Package snapshot parses XML position snapshots into in-memory maps
// keyed by natural key, enforcing key uniqueness eagerly. It is pure:
// parsing has no side effects and no database access, so every parse
// failure leaves the persisted table untouched by construction.
package snapshot
