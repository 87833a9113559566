package response

// Err 统一错误响应体：{"detail": "..."}，状态码走 HTTP 本身
type Err struct {
	Detail string `json:"detail"`
}

func Detail(msg string) Err { return Err{Detail: msg} }
