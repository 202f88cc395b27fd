package models

// Row represents a record of the 'positions' table. The composite primary
// key mirrors the table's unique constraint on (dep_code, dep_job); no
// surrogate identifier takes part in merge logic.
type Row struct {
	DepCode     string `gorm:"column:dep_code;primaryKey;size:20"`
	DepJob      string `gorm:"column:dep_job;primaryKey;size:100"`
	Description string `gorm:"column:description;size:255"`
}

// TableName overrides the table name used by GORM.
func (Row) TableName() string {
	return "positions"
}

// ToPosition converts a table row to the normalized record.
func (r Row) ToPosition() Position {
	return Position{
		Key:         Key{DepCode: r.DepCode, DepJob: r.DepJob},
		Description: r.Description,
	}
}

// StagingRow represents a record of the transaction-scoped staging table.
// Same shape as Row; a distinct type so the two tables cannot be mixed up
// in query code.
type StagingRow struct {
	DepCode     string `gorm:"column:dep_code;primaryKey;size:20"`
	DepJob      string `gorm:"column:dep_job;primaryKey;size:100"`
	Description string `gorm:"column:description;size:255"`
}

// TableName overrides the table name used by GORM.
func (StagingRow) TableName() string {
	return "positions_staging"
}

// Columns lists the column names shared by the positions and staging tables.
func Columns() []string {
	return []string{"dep_code", "dep_job", "description"}
}
