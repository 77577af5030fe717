package models

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTotals(t *testing.T) {
	// 空支出列表
	goal := Goal{Name: "旅行", TotalBudget: 100}
	goal.ComputeTotals()
	assert.Equal(t, float64(0), goal.TotalSpent)
	assert.Equal(t, float64(100), goal.Remaining)
	assert.NotNil(t, goal.Expenses, "序列化时 expenses 必须是空数组而不是 null")
	assert.False(t, goal.IsOverBudget())

	// 预算 100，记一笔 50
	goal.Expenses = append(goal.Expenses, Expense{Description: "机票", Amount: 50})
	goal.ComputeTotals()
	assert.Equal(t, float64(50), goal.TotalSpent)
	assert.Equal(t, float64(50), goal.Remaining)
	assert.False(t, goal.IsOverBudget())

	// 再记一笔 75，超预算，剩余额度压到 0 而不是负数
	goal.Expenses = append(goal.Expenses, Expense{Description: "酒店", Amount: 75})
	goal.ComputeTotals()
	assert.Equal(t, float64(125), goal.TotalSpent)
	assert.Equal(t, float64(0), goal.Remaining)
	assert.True(t, goal.IsOverBudget())
}

func TestComputeTotalsIdempotent(t *testing.T) {
	goal := Goal{TotalBudget: 100, Expenses: []Expense{{Amount: 30}, {Amount: 20}}}
	goal.ComputeTotals()
	spent, remaining := goal.TotalSpent, goal.Remaining

	// 重复计算结果不漂移
	for i := 0; i < 5; i++ {
		goal.ComputeTotals()
		assert.Equal(t, spent, goal.TotalSpent)
		assert.Equal(t, remaining, goal.Remaining)
	}
}

func TestComputeTotalsFloorsAtZero(t *testing.T) {
	// 总和为负时按 0 处理
	goal := Goal{TotalBudget: 10, Expenses: []Expense{{Amount: -5}}}
	goal.ComputeTotals()
	assert.Equal(t, float64(0), goal.TotalSpent)
	assert.Equal(t, float64(10), goal.Remaining)

	// 零预算目标剩余额度也不为负
	goal = Goal{TotalBudget: 0, Expenses: []Expense{{Amount: 1}}}
	goal.ComputeTotals()
	assert.Equal(t, float64(1), goal.TotalSpent)
	assert.Equal(t, float64(0), goal.Remaining)
	assert.True(t, goal.IsOverBudget())
}

func TestValidateGoalName(t *testing.T) {
	name, err := ValidateGoalName("  旅行基金  ")
	require.NoError(t, err)
	assert.Equal(t, "旅行基金", name)

	_, err = ValidateGoalName("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")

	// 纯空白等同于空
	_, err = ValidateGoalName("   ")
	require.Error(t, err)
}

func TestValidateBudget(t *testing.T) {
	assert.NoError(t, ValidateBudget(0))
	assert.NoError(t, ValidateBudget(999.99))

	err := ValidateBudget(-1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "totalBudget")

	assert.Error(t, ValidateBudget(math.NaN()))
	assert.Error(t, ValidateBudget(math.Inf(1)))
}

func TestValidateExpenseFields(t *testing.T) {
	desc, err := ValidateExpenseDescription(" 机票 ")
	require.NoError(t, err)
	assert.Equal(t, "机票", desc)

	_, err = ValidateExpenseDescription("  ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "description")

	assert.NoError(t, ValidateAmount(0))
	err = ValidateAmount(-0.01)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "amount")
	assert.Error(t, ValidateAmount(math.NaN()))
}

func TestParseExpenseDate(t *testing.T) {
	// RFC3339
	got, err := ParseExpenseDate("2024-06-01T12:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC), got.UTC())

	// 仅日期
	got, err = ParseExpenseDate("2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, time.June, got.Month())

	_, err = ParseExpenseDate("06/01/2024")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "date")
}

func TestValidationErrorMessageNamesField(t *testing.T) {
	err := NewValidationError("totalBudget", "不能为负数")
	assert.Equal(t, "totalBudget 不能为负数", err.Error())
}
