package api

import (
	"errors"
	"net/http"

	"budget/models"
	"budget/repository"

	"github.com/gin-gonic/gin"
)

// MessageResponse 错误与提示响应结构
// 成功响应直接返回目标 JSON，不做额外包装
type MessageResponse struct {
	Message string `json:"message"`
}

// Error 错误响应
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, MessageResponse{Message: message})
}

// BadRequest 400 错误响应
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// NotFound 404 错误响应
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// InternalError 500 错误响应
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

// RespondRepoError 将仓库错误映射为 HTTP 状态码
// 格式错误的 ID 和字段校验失败 -> 400，记录不存在 -> 404，其余 -> 500
func RespondRepoError(c *gin.Context, err error, fallback string) {
	var ve *models.ValidationError
	switch {
	case errors.Is(err, repository.ErrInvalidID):
		BadRequest(c, err.Error())
	case errors.Is(err, repository.ErrGoalNotFound),
		errors.Is(err, repository.ErrExpenseNotFound):
		NotFound(c, err.Error())
	case errors.As(err, &ve):
		BadRequest(c, ve.Error())
	default:
		InternalError(c, SafeErrorMessage(err, fallback))
	}
}
