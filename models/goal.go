package models

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Goal 预算目标模型，支出记录内嵌在目标下
type Goal struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:100;not null"`
	TotalBudget float64   `json:"totalBudget" gorm:"type:decimal(10,2);not null"`
	Expenses    []Expense `json:"expenses" gorm:"foreignKey:GoalID"`
	TotalSpent  float64   `json:"totalSpent" gorm:"-"`
	Remaining   float64   `json:"remaining" gorm:"-"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName 设置表名
func (Goal) TableName() string {
	return "goals"
}

// Expense 支出记录模型，只能属于一个目标
type Expense struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	GoalID      uint      `json:"-" gorm:"index;not null"`
	Description string    `json:"description" gorm:"size:255;not null"`
	Amount      float64   `json:"amount" gorm:"type:decimal(10,2);not null"`
	Date        time.Time `json:"date" gorm:"not null"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

// TableName 设置表名
func (Expense) TableName() string {
	return "expenses"
}

// ComputeTotals 重新计算派生字段，每次返回给客户端前必须调用
// TotalSpent 和 Remaining 不落库，始终根据当前支出列表现算
func (g *Goal) ComputeTotals() {
	if g.Expenses == nil {
		g.Expenses = []Expense{}
	}
	var sum float64
	for _, e := range g.Expenses {
		sum += e.Amount
	}
	if sum < 0 {
		sum = 0
	}
	g.TotalSpent = sum
	g.Remaining = g.TotalBudget - sum
	if g.Remaining < 0 {
		g.Remaining = 0
	}
}

// IsOverBudget 是否超预算，仅用于展示，不落库
func (g *Goal) IsOverBudget() bool {
	return g.TotalSpent > g.TotalBudget
}

// ValidationError 字段校验错误，message 中必须带上字段名
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// NewValidationError 创建字段校验错误
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// ValidateGoalName 校验目标名称，返回去除首尾空白后的值
func ValidateGoalName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", NewValidationError("name", "不能为空")
	}
	return trimmed, nil
}

// ValidateBudget 校验总预算
func ValidateBudget(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NewValidationError("totalBudget", "必须是有效数字")
	}
	if v < 0 {
		return NewValidationError("totalBudget", "不能为负数")
	}
	return nil
}

// ValidateExpenseDescription 校验支出描述，返回去除首尾空白后的值
func ValidateExpenseDescription(desc string) (string, error) {
	trimmed := strings.TrimSpace(desc)
	if trimmed == "" {
		return "", NewValidationError("description", "不能为空")
	}
	return trimmed, nil
}

// ValidateAmount 校验支出金额
func ValidateAmount(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NewValidationError("amount", "必须是有效数字")
	}
	if v < 0 {
		return NewValidationError("amount", "不能为负数")
	}
	return nil
}

// ParseExpenseDate 解析支出日期，支持 RFC3339 和 2006-01-02 两种格式
func ParseExpenseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}
	return time.Time{}, NewValidationError("date", "格式错误，应为 RFC3339 或 2006-01-02")
}
