package ez

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newEngine() (*gin.Engine, *Router) {
	gin.SetMode(gin.TestMode)
	e := gin.New()
	return e, New(e.Group(""))
}

func TestRegisterActionJSONBinding(t *testing.T) {
	e, r := newEngine()

	type in struct {
		Name string `json:"name" binding:"required"`
	}
	type out struct {
		Greeting string `json:"greeting"`
	}
	RegisterAction[in, out](r, Action[in, out]{
		Method: http.MethodPost,
		Path:   "/greet",
		Binder: BindJSON,
		Handler: func(c *gin.Context, in *in) (out, error) {
			return out{Greeting: "hi " + in.Name}, nil
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/greet", strings.NewReader(`{"name":"bob"}`))
	e.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"greeting":"hi bob"}`, w.Body.String())

	// 缺字段 → 400 {detail}
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/greet", strings.NewReader(`{}`))
	e.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "detail")
}

func TestRegisterActionCustomStatus(t *testing.T) {
	e, r := newEngine()

	RegisterAction[struct{}, gin.H](r, Action[struct{}, gin.H]{
		Method: http.MethodPost,
		Path:   "/things",
		Binder: BindNone,
		Status: http.StatusCreated,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			return gin.H{"ok": true}, nil
		},
	})

	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/things", nil))
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestRegisterActionErrorMapping(t *testing.T) {
	e, r := newEngine()

	RegisterAction[struct{}, gin.H](r, Action[struct{}, gin.H]{
		Method: http.MethodGet,
		Path:   "/missing",
		Binder: BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			return nil, NotFound("thing not found")
		},
	})
	RegisterAction[struct{}, gin.H](r, Action[struct{}, gin.H]{
		Method: http.MethodGet,
		Path:   "/bad",
		Binder: BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			return nil, BadRequest("nope")
		},
	})
	RegisterAction[struct{}, gin.H](r, Action[struct{}, gin.H]{
		Method: http.MethodGet,
		Path:   "/boom",
		Binder: BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			return nil, errors.New("db on fire")
		},
	})

	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"thing not found"}`, w.Body.String())

	w = httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bad", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"detail":"nope"}`, w.Body.String())

	// 未分类错误不外泄
	w = httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"detail":"internal error"}`, w.Body.String())
}
