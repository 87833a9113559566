package router

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"employee-api/internal/domain"
	httpez "employee-api/internal/transport/http/ez"
)

// mountEmployeeActions 员工接口。注意挂载顺序：
// /employees/avg-salary 与 /employees/search 是静态路径，
// 必须与 /employees/:employee_id 区分开（gin 静态优先匹配）。
func mountEmployeeActions(e *gin.Engine, repo domain.EmployeeRepository) {
	ez := httpez.New(e.Group(""))

	// --- 根路径：状态 + 总数 ---
	type rootOut struct {
		Message        string `json:"message"`
		EmployeesCount int64  `json:"employees_count"`
	}
	httpez.RegisterAction[struct{}, rootOut](ez, httpez.Action[struct{}, rootOut]{
		Method: http.MethodGet,
		Path:   "/",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (rootOut, error) {
			n, err := repo.Count(c.Request.Context())
			if err != nil {
				return rootOut{}, httpez.Internal("count employees failed", err)
			}
			return rootOut{Message: "API running", EmployeesCount: n}, nil
		},
	})

	// --- 列表：可选部门过滤 + 分页，按 joining_date 倒序 ---
	type listQ struct {
		Department string `form:"department"`
		Page       int    `form:"page,default=1" binding:"gte=1"`
		PageSize   int    `form:"page_size,default=10" binding:"gte=1,lte=100"`
	}
	httpez.RegisterAction[listQ, []domain.Employee](ez, httpez.Action[listQ, []domain.Employee]{
		Method: http.MethodGet,
		Path:   "/employees",
		Binder: httpez.BindQuery,
		Handler: func(c *gin.Context, in *listQ) ([]domain.Employee, error) {
			out, err := repo.List(c.Request.Context(), domain.ListFilter{
				Department: in.Department,
				Page:       in.Page,
				PageSize:   in.PageSize,
			})
			if err != nil {
				return nil, httpez.Internal("list employees failed", err)
			}
			return out, nil
		},
	})

	// --- 部门平均工资 ---
	httpez.RegisterAction[struct{}, []domain.DepartmentAvgSalary](ez, httpez.Action[struct{}, []domain.DepartmentAvgSalary]{
		Method: http.MethodGet,
		Path:   "/employees/avg-salary",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.DepartmentAvgSalary, error) {
			out, err := repo.AvgSalaryByDepartment(c.Request.Context())
			if err != nil {
				return nil, httpez.Internal("aggregate avg salary failed", err)
			}
			return out, nil
		},
	})

	// --- 技能搜索：精确匹配 skills 成员。
	// page/page_size 这里沿用上游实现，故意不做上限校验（与列表接口不一致）。
	type searchQ struct {
		Skill    string `form:"skill" binding:"required"`
		Page     int    `form:"page,default=1"`
		PageSize int    `form:"page_size,default=10"`
	}
	httpez.RegisterAction[searchQ, []domain.Employee](ez, httpez.Action[searchQ, []domain.Employee]{
		Method: http.MethodGet,
		Path:   "/employees/search",
		Binder: httpez.BindQuery,
		Handler: func(c *gin.Context, in *searchQ) ([]domain.Employee, error) {
			out, err := repo.SearchBySkill(c.Request.Context(), in.Skill, in.Page, in.PageSize)
			if err != nil {
				return nil, httpez.Internal("search employees failed", err)
			}
			return out, nil
		},
	})

	// --- 创建 ---
	type createIn struct {
		EmployeeID  string   `json:"employee_id" binding:"required"`
		Name        string   `json:"name" binding:"required"`
		Department  string   `json:"department" binding:"required"`
		Salary      *float64 `json:"salary" binding:"required,gte=0"`
		JoiningDate string   `json:"joining_date" binding:"required"`
		Skills      []string `json:"skills"`
	}
	httpez.RegisterAction[createIn, *domain.Employee](ez, httpez.Action[createIn, *domain.Employee]{
		Method: http.MethodPost,
		Path:   "/employees",
		Binder: httpez.BindJSON,
		Status: http.StatusCreated,
		Handler: func(c *gin.Context, in *createIn) (*domain.Employee, error) {
			created, err := repo.Create(c.Request.Context(), &domain.Employee{
				EmployeeID:  in.EmployeeID,
				Name:        in.Name,
				Department:  in.Department,
				Salary:      *in.Salary,
				JoiningDate: in.JoiningDate,
				Skills:      in.Skills,
			})
			if errors.Is(err, domain.ErrDuplicateEmployeeID) {
				return nil, httpez.BadRequest("employee_id must be unique")
			}
			if err != nil {
				return nil, httpez.Internal("create employee failed", err)
			}
			return created, nil
		},
	})

	// --- 单查 ---
	httpez.RegisterAction[struct{}, *domain.Employee](ez, httpez.Action[struct{}, *domain.Employee]{
		Method: http.MethodGet,
		Path:   "/employees/:employee_id",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.Employee, error) {
			emp, err := repo.FindByEmployeeID(c.Request.Context(), c.Param("employee_id"))
			if err != nil {
				return nil, httpez.Internal("get employee failed", err)
			}
			if emp == nil {
				return nil, httpez.NotFound("Employee not found")
			}
			return emp, nil
		},
	})

	// --- 部分更新：只写显式提供的字段 ---
	httpez.RegisterAction[domain.EmployeeUpdate, *domain.Employee](ez, httpez.Action[domain.EmployeeUpdate, *domain.Employee]{
		Method: http.MethodPut,
		Path:   "/employees/:employee_id",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *domain.EmployeeUpdate) (*domain.Employee, error) {
			if in.IsEmpty() {
				return nil, httpez.BadRequest("No fields provided for update")
			}
			emp, err := repo.Update(c.Request.Context(), c.Param("employee_id"), in)
			if err != nil {
				return nil, httpez.Internal("update employee failed", err)
			}
			if emp == nil {
				return nil, httpez.NotFound("Employee not found")
			}
			return emp, nil
		},
	})

	// --- 删除 ---
	httpez.RegisterAction[struct{}, gin.H](ez, httpez.Action[struct{}, gin.H]{
		Method: http.MethodDelete,
		Path:   "/employees/:employee_id",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			ok, err := repo.Delete(c.Request.Context(), c.Param("employee_id"))
			if err != nil {
				return nil, httpez.Internal("delete employee failed", err)
			}
			if !ok {
				return nil, httpez.NotFound("Employee not found")
			}
			return gin.H{"detail": "Employee deleted successfully"}, nil
		},
	})
}
