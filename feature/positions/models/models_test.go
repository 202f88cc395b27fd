package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey_Identity(t *testing.T) {
	// Two positions with the same key collide in a map regardless of description.
	snap := make(Snapshot)
	k := Key{DepCode: "D1", DepJob: "Clerk"}

	snap[k] = Position{Key: k, Description: "first"}
	snap[Key{DepCode: "D1", DepJob: "Clerk"}] = Position{Key: k, Description: "second"}

	assert.Len(t, snap, 1)
	assert.Equal(t, "second", snap[k].Description)
}

func TestKey_String(t *testing.T) {
	k := Key{DepCode: "D1", DepJob: "Clerk"}
	assert.Equal(t, "D1:Clerk", k.String())
}

func TestRow_ToPosition(t *testing.T) {
	r := Row{DepCode: "D2", DepJob: "Manager", Description: "Mgr desc"}
	p := r.ToPosition()

	assert.Equal(t, Key{DepCode: "D2", DepJob: "Manager"}, p.Key)
	assert.Equal(t, "Mgr desc", p.Description)
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "positions", Row{}.TableName())
	assert.Equal(t, "positions_staging", StagingRow{}.TableName())
	assert.Equal(t, []string{"dep_code", "dep_job", "description"}, Columns())
}
