// Package export serializes the positions table into XML snapshot files
// that the sync engine accepts back unchanged.
package export
