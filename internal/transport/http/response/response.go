package response

type Resp struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data"`
}

// New 构造函数（保证 data 不为 null）
func New(code int, msg string, data interface{}) Resp {
	if data == nil {
		data = struct{}{}
	}
	return Resp{Code: code, Msg: msg, Data: data}
}

// OK 成功响应
func OK(data interface{}) Resp {
	return New(CodeOK, CodeMsgMap[CodeOK], data)
}

// Error 失败响应（可传自定义 msg 覆盖默认）
func Error(code int, customMsg string) Resp {
	msg := CodeMsgMap[code]
	if customMsg != "" {
		msg = customMsg
	}
	return New(code, msg, struct{}{})
}

// FieldError 表单字段级错误项；注册时可能同时带多条
type FieldItem struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

// Fields 字段级失败响应
func Fields(items []FieldItem) Resp {
	return New(CodeBadRequest, CodeMsgMap[CodeBadRequest], map[string]any{"fields": items})
}
