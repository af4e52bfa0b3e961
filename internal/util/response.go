package util

import (
	"net/http"

	"qa_kb_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MessageResponse 仅包含提示信息的响应
type MessageResponse struct {
	Message string `json:"message"`
}

// OutcomeResponse 写操作结果
type OutcomeResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	QuestionID uint   `json:"questionId,omitempty"`
	AnswerID   string `json:"answerId,omitempty"`
	ContextID  string `json:"contextId,omitempty"`
}

// Success 直接返回数据本身，不做包装
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func Error(c *gin.Context, code int, message string) {
	c.JSON(code, MessageResponse{Message: message})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func InternalServerError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

func Outcome(c *gin.Context, code int, resp OutcomeResponse) {
	c.JSON(code, resp)
}

// LogError 记录带请求上下文的错误日志
func LogError(c *gin.Context, msg string, err error) {
	logger.Log.Error(msg,
		zap.Error(err),
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.String("request_id", c.GetString(RequestIDKey)),
	)
}

func LogInternalError(c *gin.Context, err error, message string) {
	LogError(c, message, err)
	InternalServerError(c, message)
}
