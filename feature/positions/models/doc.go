// Package models defines the position record, its explicit natural-key
// type, and the GORM table models for the positions and staging tables.
package models
