package domain

import (
	"context"
	"errors"
)

// ErrDuplicateEmployeeID 唯一索引冲突（employee_id 已存在）
var ErrDuplicateEmployeeID = errors.New("employee_id must be unique")

type Employee struct {
	ID          string   `json:"id"` // 存储层分配的内部标识（只读）
	EmployeeID  string   `json:"employee_id"`
	Name        string   `json:"name"`
	Department  string   `json:"department"`
	Salary      float64  `json:"salary"`
	JoiningDate string   `json:"joining_date"` // YYYY-MM-DD
	Skills      []string `json:"skills"`
}

type DepartmentAvgSalary struct {
	Department string  `json:"department"`
	AvgSalary  float64 `json:"avg_salary"`
}

// EmployeeUpdate 部分更新：nil 字段视为未提供，不会写入
type EmployeeUpdate struct {
	Name        *string   `json:"name"`
	Department  *string   `json:"department"`
	Salary      *float64  `json:"salary"`
	JoiningDate *string   `json:"joining_date"`
	Skills      *[]string `json:"skills"`
}

func (u *EmployeeUpdate) IsEmpty() bool { return len(u.Fields()) == 0 }

// Fields 只收集显式提供的字段
func (u *EmployeeUpdate) Fields() map[string]any {
	out := map[string]any{}
	if u.Name != nil {
		out["name"] = *u.Name
	}
	if u.Department != nil {
		out["department"] = *u.Department
	}
	if u.Salary != nil {
		out["salary"] = *u.Salary
	}
	if u.JoiningDate != nil {
		out["joining_date"] = *u.JoiningDate
	}
	if u.Skills != nil {
		out["skills"] = *u.Skills
	}
	return out
}

type ListFilter struct {
	Department string
	Page       int
	PageSize   int
}

func (f ListFilter) Offset() int64 { return int64(f.Page-1) * int64(f.PageSize) }

type EmployeeRepository interface {
	Create(ctx context.Context, e *Employee) (*Employee, error)
	FindByEmployeeID(ctx context.Context, employeeID string) (*Employee, error)
	Update(ctx context.Context, employeeID string, upd *EmployeeUpdate) (*Employee, error)
	Delete(ctx context.Context, employeeID string) (bool, error)
	List(ctx context.Context, f ListFilter) ([]Employee, error)
	SearchBySkill(ctx context.Context, skill string, page, pageSize int) ([]Employee, error)
	AvgSalaryByDepartment(ctx context.Context) ([]DepartmentAvgSalary, error)
	Count(ctx context.Context) (int64, error)
}
