package repository

import (
	"testing"
	"time"

	"budget/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockRepo(t *testing.T) (*GoalRepository, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return NewGoalRepository(gormDB), mock
}

func goalRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "total_budget", "created_at", "updated_at"})
}

func expenseRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "goal_id", "description", "amount", "date", "created_at", "updated_at"})
}

func TestParseID(t *testing.T) {
	id, err := ParseID("12")
	require.NoError(t, err)
	assert.Equal(t, uint(12), id)

	for _, bad := range []string{"abc", "0", "-1", "1.5", ""} {
		_, err := ParseID(bad)
		assert.ErrorIs(t, err, ErrInvalidID, "ParseID(%q)", bad)
	}
}

func TestListGoals(t *testing.T) {
	repo, mock := setupMockRepo(t)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM `goals`").
		WillReturnRows(goalRows().
			AddRow(2, "装修", 500, now, now).
			AddRow(1, "旅行", 100, now.Add(-time.Hour), now.Add(-time.Hour)))

	// 预加载支出
	mock.ExpectQuery("SELECT (.+) FROM `expenses`").
		WillReturnRows(expenseRows().
			AddRow(1, 1, "机票", 30, now, now, now).
			AddRow(2, 1, "酒店", 20, now, now, now))

	goals, err := repo.ListGoals()
	require.NoError(t, err)
	require.Len(t, goals, 2)

	// 列表按存储层返回顺序（创建时间倒序）
	assert.Equal(t, uint(2), goals[0].ID)
	assert.Equal(t, float64(0), goals[0].TotalSpent)
	assert.Equal(t, float64(500), goals[0].Remaining)
	assert.NotNil(t, goals[0].Expenses)

	// 派生字段在读取时现算
	assert.Equal(t, uint(1), goals[1].ID)
	assert.Equal(t, float64(50), goals[1].TotalSpent)
	assert.Equal(t, float64(50), goals[1].Remaining)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateGoal(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `goals`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	goal, err := repo.CreateGoal("  旅行基金  ", 100)
	require.NoError(t, err)
	assert.Equal(t, uint(1), goal.ID)
	assert.Equal(t, "旅行基金", goal.Name, "名称应去除首尾空白")
	assert.Equal(t, float64(100), goal.TotalBudget)
	assert.Empty(t, goal.Expenses)
	assert.Equal(t, float64(0), goal.TotalSpent)
	assert.Equal(t, float64(100), goal.Remaining)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateGoalValidation(t *testing.T) {
	repo, mock := setupMockRepo(t)

	// 空名称
	_, err := repo.CreateGoal("   ", 100)
	var ve *models.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "name", ve.Field)

	// 负预算
	_, err = repo.CreateGoal("旅行", -1)
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "totalBudget", ve.Field)

	// 零预算合法
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `goals`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()
	goal, err := repo.CreateGoal("旅行", 0)
	require.NoError(t, err)
	assert.Equal(t, float64(0), goal.TotalBudget)

	// 校验失败时不应发出任何 SQL
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetGoalNotFound(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM `goals`").
		WillReturnRows(goalRows())

	_, err := repo.GetGoal(99)
	assert.ErrorIs(t, err, ErrGoalNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetGoal(t *testing.T) {
	repo, mock := setupMockRepo(t)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM `goals`").
		WillReturnRows(goalRows().AddRow(1, "旅行", 100, now, now))
	mock.ExpectQuery("SELECT (.+) FROM `expenses`").
		WillReturnRows(expenseRows().AddRow(1, 1, "机票", 60, now, now, now))

	goal, err := repo.GetGoal(1)
	require.NoError(t, err)
	assert.Equal(t, "旅行", goal.Name)
	assert.Equal(t, float64(60), goal.TotalSpent)
	assert.Equal(t, float64(40), goal.Remaining)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateGoalAllOrNothing(t *testing.T) {
	repo, mock := setupMockRepo(t)

	// name 合法但 totalBudget 非法：整体拒绝，不应发出任何 SQL
	name := "新名字"
	bad := float64(-5)
	_, err := repo.UpdateGoal(1, GoalPatch{Name: &name, TotalBudget: &bad})

	var ve *models.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "totalBudget", ve.Field)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateGoal(t *testing.T) {
	repo, mock := setupMockRepo(t)
	now := time.Now()
	budget := float64(200)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `goals`(.+)FOR UPDATE").
		WillReturnRows(goalRows().AddRow(1, "旅行", 100, now, now))
	mock.ExpectExec("UPDATE `goals` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT (.+) FROM `goals`").
		WillReturnRows(goalRows().AddRow(1, "旅行", 200, now, now))
	mock.ExpectQuery("SELECT (.+) FROM `expenses`").
		WillReturnRows(expenseRows())
	mock.ExpectCommit()

	goal, err := repo.UpdateGoal(1, GoalPatch{TotalBudget: &budget})
	require.NoError(t, err)
	assert.Equal(t, "旅行", goal.Name, "未携带的字段保持不变")
	assert.Equal(t, float64(200), goal.TotalBudget)
	assert.Equal(t, float64(200), goal.Remaining)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateGoalEmptyPatch(t *testing.T) {
	repo, mock := setupMockRepo(t)
	now := time.Now()

	// 没有携带任何字段时不执行 UPDATE，原样返回
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `goals`(.+)FOR UPDATE").
		WillReturnRows(goalRows().AddRow(1, "旅行", 100, now, now))
	mock.ExpectQuery("SELECT (.+) FROM `expenses`").
		WillReturnRows(expenseRows())
	mock.ExpectCommit()

	goal, err := repo.UpdateGoal(1, GoalPatch{})
	require.NoError(t, err)
	assert.Equal(t, "旅行", goal.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteGoalCascades(t *testing.T) {
	repo, mock := setupMockRepo(t)
	now := time.Now()

	// 支出和目标本体在同一事务内删除
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `goals`(.+)FOR UPDATE").
		WillReturnRows(goalRows().AddRow(1, "旅行", 100, now, now))
	mock.ExpectExec("DELETE FROM `expenses`").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM `goals`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteGoal(1))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteGoalNotFound(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `goals`(.+)FOR UPDATE").
		WillReturnRows(goalRows())
	mock.ExpectRollback()

	err := repo.DeleteGoal(42)
	assert.ErrorIs(t, err, ErrGoalNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAddExpense(t *testing.T) {
	repo, mock := setupMockRepo(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `goals`(.+)FOR UPDATE").
		WillReturnRows(goalRows().AddRow(1, "旅行", 100, now, now))
	mock.ExpectExec("INSERT INTO `expenses`").
		WillReturnResult(sqlmock.NewResult(5, 1))
	mock.ExpectExec("UPDATE `goals` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT (.+) FROM `expenses`").
		WillReturnRows(expenseRows().AddRow(5, 1, "机票", 50, now, now, now))
	mock.ExpectCommit()

	goal, err := repo.AddExpense(1, " 机票 ", 50, time.Time{})
	require.NoError(t, err)
	require.Len(t, goal.Expenses, 1)
	assert.Equal(t, float64(50), goal.TotalSpent)
	assert.Equal(t, float64(50), goal.Remaining)
	assert.False(t, goal.IsOverBudget())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAddExpenseValidation(t *testing.T) {
	repo, mock := setupMockRepo(t)

	var ve *models.ValidationError
	_, err := repo.AddExpense(1, "  ", 10, time.Time{})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "description", ve.Field)

	_, err = repo.AddExpense(1, "机票", -1, time.Time{})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "amount", ve.Field)

	// 校验失败时不应发出任何 SQL
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateExpenseNotFound(t *testing.T) {
	repo, mock := setupMockRepo(t)
	now := time.Now()
	amount := float64(10)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `goals`(.+)FOR UPDATE").
		WillReturnRows(goalRows().AddRow(1, "旅行", 100, now, now))
	mock.ExpectQuery("SELECT (.+) FROM `expenses`").
		WillReturnRows(expenseRows())
	mock.ExpectRollback()

	_, err := repo.UpdateExpense(1, 99, ExpensePatch{Amount: &amount})
	assert.ErrorIs(t, err, ErrExpenseNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateExpense(t *testing.T) {
	repo, mock := setupMockRepo(t)
	now := time.Now()
	amount := float64(75)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `goals`(.+)FOR UPDATE").
		WillReturnRows(goalRows().AddRow(1, "旅行", 100, now, now))
	mock.ExpectQuery("SELECT (.+) FROM `expenses`").
		WillReturnRows(expenseRows().AddRow(5, 1, "机票", 50, now, now, now))
	mock.ExpectExec("UPDATE `expenses` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `goals` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT (.+) FROM `expenses`").
		WillReturnRows(expenseRows().AddRow(5, 1, "机票", 75, now, now, now))
	mock.ExpectCommit()

	goal, err := repo.UpdateExpense(1, 5, ExpensePatch{Amount: &amount})
	require.NoError(t, err)
	assert.Equal(t, float64(75), goal.TotalSpent)
	assert.Equal(t, float64(25), goal.Remaining)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateExpenseAllOrNothing(t *testing.T) {
	repo, mock := setupMockRepo(t)

	desc := "新描述"
	bad := float64(-1)
	_, err := repo.UpdateExpense(1, 5, ExpensePatch{Description: &desc, Amount: &bad})

	var ve *models.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "amount", ve.Field)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteExpense(t *testing.T) {
	repo, mock := setupMockRepo(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `goals`(.+)FOR UPDATE").
		WillReturnRows(goalRows().AddRow(1, "旅行", 100, now, now))
	mock.ExpectQuery("SELECT (.+) FROM `expenses`").
		WillReturnRows(expenseRows().AddRow(5, 1, "机票", 50, now, now, now))
	mock.ExpectExec("DELETE FROM `expenses`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `goals` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT (.+) FROM `expenses`").
		WillReturnRows(expenseRows())
	mock.ExpectCommit()

	goal, err := repo.DeleteExpense(1, 5)
	require.NoError(t, err)
	assert.Empty(t, goal.Expenses)
	assert.Equal(t, float64(0), goal.TotalSpent)
	assert.Equal(t, float64(100), goal.Remaining)
	require.NoError(t, mock.ExpectationsWereMet())
}
