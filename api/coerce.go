package api

import (
	"strconv"
	"strings"

	"budget/models"
)

// toNumber 将请求里的数字或数字字符串统一转换为 float64
// 客户端表单提交的金额可能是字符串，这里做宽松转换，转不了则报字段校验错误
func toNumber(field string, v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, models.NewValidationError(field, "必须是数字")
		}
		return f, nil
	default:
		return 0, models.NewValidationError(field, "必须是数字")
	}
}
