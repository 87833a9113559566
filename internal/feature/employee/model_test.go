package employee

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"employee-api/internal/domain"
)

func TestToDomainMapsObjectID(t *testing.T) {
	oid := primitive.NewObjectID()
	doc := Doc{
		ID:          oid,
		EmployeeID:  "E123",
		Name:        "Alice",
		Department:  "Engineering",
		Salary:      5000,
		JoiningDate: "2023-01-15",
		Skills:      []string{"go", "mongodb"},
	}

	e := doc.ToDomain()
	assert.Equal(t, oid.Hex(), e.ID)
	assert.Equal(t, "E123", e.EmployeeID)
	assert.Equal(t, "Alice", e.Name)
	assert.Equal(t, "Engineering", e.Department)
	assert.Equal(t, 5000.0, e.Salary)
	assert.Equal(t, "2023-01-15", e.JoiningDate)
	assert.Equal(t, []string{"go", "mongodb"}, e.Skills)
}

func TestToDomainNilSkills(t *testing.T) {
	doc := Doc{ID: primitive.NewObjectID()}
	e := doc.ToDomain()
	assert.NotNil(t, e.Skills)
	assert.Empty(t, e.Skills)
}

func TestFromDomainDefaultsSkills(t *testing.T) {
	doc := FromDomain(&domain.Employee{EmployeeID: "E1", Name: "Bob"})
	assert.NotNil(t, doc.Skills)
	assert.Empty(t, doc.Skills)
	assert.True(t, doc.ID.IsZero())
}

func TestJSONSchemaShape(t *testing.T) {
	schema := JSONSchema()

	required, ok := schema["required"].([]string)
	require.True(t, ok)
	assert.ElementsMatch(t,
		[]string{"employee_id", "name", "department", "salary", "joining_date", "skills"},
		required,
	)

	props, ok := schema["properties"].(bson.M)
	require.True(t, ok)

	salary, ok := props["salary"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, 0, salary["minimum"])

	jd, ok := props["joining_date"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, "^[0-9]{4}-[0-9]{2}-[0-9]{2}$", jd["pattern"])
}
