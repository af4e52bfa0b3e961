package util

const (
	// SearchLimit 问题检索最多返回的行数
	SearchLimit = 100

	// MaxGeneratedQuestions 单次生成问题的上限
	MaxGeneratedQuestions = 1000

	RequestIDHeader = "X-Request-ID"
	RequestIDKey    = "requestId"
)

// 对外返回的通用提示，不暴露内部错误细节
const (
	MsgOperationFailed = "An error occurred. Please check the server logs for more details."
	MsgServerError     = "Server error"
)
