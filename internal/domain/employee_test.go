package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmployeeUpdateFields(t *testing.T) {
	name := "Alice"
	salary := 1200.5
	upd := EmployeeUpdate{Name: &name, Salary: &salary}

	fields := upd.Fields()
	assert.Equal(t, map[string]any{"name": "Alice", "salary": 1200.5}, fields)
	assert.False(t, upd.IsEmpty())
}

func TestEmployeeUpdateEmpty(t *testing.T) {
	var upd EmployeeUpdate
	assert.True(t, upd.IsEmpty())
	assert.Empty(t, upd.Fields())
}

func TestEmployeeUpdateSkillsExplicitEmpty(t *testing.T) {
	skills := []string{}
	upd := EmployeeUpdate{Skills: &skills}

	// 显式传空数组也算提供了字段
	assert.False(t, upd.IsEmpty())
	assert.Equal(t, map[string]any{"skills": []string{}}, upd.Fields())
}

func TestListFilterOffset(t *testing.T) {
	assert.Equal(t, int64(0), ListFilter{Page: 1, PageSize: 10}.Offset())
	assert.Equal(t, int64(2), ListFilter{Page: 2, PageSize: 2}.Offset())
	assert.Equal(t, int64(40), ListFilter{Page: 5, PageSize: 10}.Offset())
}
