package employee

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"employee-api/internal/domain"
)

type Doc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	EmployeeID  string             `bson:"employee_id"`
	Name        string             `bson:"name"`
	Department  string             `bson:"department"`
	Salary      float64            `bson:"salary"`
	JoiningDate string             `bson:"joining_date"`
	Skills      []string           `bson:"skills"`
}

func CollectionName() string { return "employees" }

// JSONSchema 集合级校验器（应用层校验之外的兜底，外部写入同样受约束）
func JSONSchema() bson.M {
	return bson.M{
		"bsonType": "object",
		"required": []string{"employee_id", "name", "department", "salary", "joining_date", "skills"},
		"properties": bson.M{
			"employee_id": bson.M{
				"bsonType":    "string",
				"description": "Must be a string and is required",
			},
			"name": bson.M{
				"bsonType":    "string",
				"description": "Must be a string and is required",
			},
			"department": bson.M{
				"bsonType":    "string",
				"description": "Must be a string",
			},
			"salary": bson.M{
				"bsonType":    "double",
				"minimum":     0,
				"description": "Must be a positive number",
			},
			"joining_date": bson.M{
				"bsonType":    "string",
				"pattern":     "^[0-9]{4}-[0-9]{2}-[0-9]{2}$",
				"description": "Must match YYYY-MM-DD",
			},
			"skills": bson.M{
				"bsonType":    "array",
				"items":       bson.M{"bsonType": "string"},
				"description": "Must be an array of strings",
			},
		},
	}
}

func FromDomain(e *domain.Employee) *Doc {
	skills := e.Skills
	if skills == nil {
		skills = []string{}
	}
	return &Doc{
		EmployeeID:  e.EmployeeID,
		Name:        e.Name,
		Department:  e.Department,
		Salary:      e.Salary,
		JoiningDate: e.JoiningDate,
		Skills:      skills,
	}
}

// ToDomain 对外映射：内部 _id 序列化为字符串 id
func (d *Doc) ToDomain() *domain.Employee {
	skills := d.Skills
	if skills == nil {
		skills = []string{}
	}
	return &domain.Employee{
		ID:          d.ID.Hex(),
		EmployeeID:  d.EmployeeID,
		Name:        d.Name,
		Department:  d.Department,
		Salary:      d.Salary,
		JoiningDate: d.JoiningDate,
		Skills:      skills,
	}
}
