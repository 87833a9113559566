package ez

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	resp "employee-api/internal/transport/http/response"
)

// Binder 输入绑定方式
type Binder int

const (
	BindNone Binder = iota
	BindJSON
	BindQuery
)

// Action 一个端点的声明：方法 + 路径 + 绑定 + 业务函数
// Handler 返回 apiError 时按其状态码响应，其他错误一律 500
type Action[In any, Out any] struct {
	Method string
	Path   string
	Binder Binder
	Status int // 成功状态码，0 表示 200
	Handler func(c *gin.Context, in *In) (Out, error)
}

type Router struct{ g *gin.RouterGroup }

func New(g *gin.RouterGroup) *Router { return &Router{g: g} }

func RegisterAction[In any, Out any](r *Router, a Action[In, Out]) {
	status := a.Status
	if status == 0 {
		status = http.StatusOK
	}
	r.g.Handle(a.Method, a.Path, func(c *gin.Context) {
		in := new(In)
		switch a.Binder {
		case BindJSON:
			if err := c.ShouldBindJSON(in); err != nil {
				c.JSON(http.StatusBadRequest, resp.Detail(err.Error()))
				return
			}
		case BindQuery:
			if err := c.ShouldBindQuery(in); err != nil {
				c.JSON(http.StatusBadRequest, resp.Detail(err.Error()))
				return
			}
		}
		out, err := a.Handler(c, in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(status, out)
	})
}

// apiError 携带 HTTP 状态码的业务错误
type apiError struct {
	status int
	detail string
	cause  error
}

func (e *apiError) Error() string { return e.detail }
func (e *apiError) Unwrap() error { return e.cause }

func BadRequest(detail string) error {
	return &apiError{status: http.StatusBadRequest, detail: detail}
}

func NotFound(detail string) error {
	return &apiError{status: http.StatusNotFound, detail: detail}
}

func Internal(detail string, cause error) error {
	return &apiError{status: http.StatusInternalServerError, detail: detail, cause: cause}
}

func writeError(c *gin.Context, err error) {
	var ae *apiError
	if errors.As(err, &ae) {
		if ae.cause != nil {
			_ = c.Error(ae.cause)
		}
		c.JSON(ae.status, resp.Detail(ae.detail))
		return
	}
	// 未分类错误：不向外泄露细节，交给访问日志
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, resp.Detail("internal error"))
}
