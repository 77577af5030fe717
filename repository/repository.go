package repository

import (
	"errors"
	"strconv"
	"time"

	"budget/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// 仓库错误类型，api 层据此映射 HTTP 状态码
var (
	ErrInvalidID       = errors.New("无效的ID")
	ErrGoalNotFound    = errors.New("目标不存在")
	ErrExpenseNotFound = errors.New("支出记录不存在")
)

// ParseID 在查库前校验标识符格式，必须是正整数
func ParseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil || id == 0 {
		return 0, ErrInvalidID
	}
	return uint(id), nil
}

// GoalPatch 目标部分更新，nil 表示请求未携带该字段
type GoalPatch struct {
	Name        *string
	TotalBudget *float64
}

// ExpensePatch 支出部分更新，nil 表示请求未携带该字段
type ExpensePatch struct {
	Description *string
	Amount      *float64
	Date        *time.Time
}

// GoalRepository 目标聚合仓库，所有读写都以目标为单位
type GoalRepository struct {
	db *gorm.DB
}

// NewGoalRepository 创建目标仓库
func NewGoalRepository(db *gorm.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

func expenseOrder(db *gorm.DB) *gorm.DB {
	return db.Order("expenses.id ASC")
}

// lockGoal 在事务内加行锁读取目标，同一目标上的并发写操作在这里串行化
func lockGoal(tx *gorm.DB, id uint) (*models.Goal, error) {
	var goal models.Goal
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&goal, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrGoalNotFound
	}
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// loadExpenses 事务内重新加载支出列表并重算派生字段
func loadExpenses(tx *gorm.DB, goal *models.Goal) error {
	var expenses []models.Expense
	if err := tx.Where("goal_id = ?", goal.ID).Order("id ASC").Find(&expenses).Error; err != nil {
		return err
	}
	goal.Expenses = expenses
	goal.ComputeTotals()
	return nil
}

// touchGoal 支出变动时同步目标的 updated_at
func touchGoal(tx *gorm.DB, goal *models.Goal) error {
	now := time.Now()
	if err := tx.Model(goal).UpdateColumn("updated_at", now).Error; err != nil {
		return err
	}
	goal.UpdatedAt = now
	return nil
}

// ListGoals 获取全部目标，按创建时间倒序（最新的在前）
func (r *GoalRepository) ListGoals() ([]models.Goal, error) {
	var goals []models.Goal
	err := r.db.
		Preload("Expenses", expenseOrder).
		Order("created_at DESC, id DESC").
		Find(&goals).Error
	if err != nil {
		return nil, err
	}
	for i := range goals {
		goals[i].ComputeTotals()
	}
	if goals == nil {
		goals = []models.Goal{}
	}
	return goals, nil
}

// CreateGoal 创建目标，初始支出列表为空
func (r *GoalRepository) CreateGoal(name string, totalBudget float64) (*models.Goal, error) {
	trimmed, err := models.ValidateGoalName(name)
	if err != nil {
		return nil, err
	}
	if err := models.ValidateBudget(totalBudget); err != nil {
		return nil, err
	}

	goal := models.Goal{Name: trimmed, TotalBudget: totalBudget}
	if err := r.db.Create(&goal).Error; err != nil {
		return nil, err
	}
	goal.ComputeTotals()
	return &goal, nil
}

// GetGoal 获取单个目标，派生字段现算
func (r *GoalRepository) GetGoal(id uint) (*models.Goal, error) {
	var goal models.Goal
	err := r.db.Preload("Expenses", expenseOrder).First(&goal, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrGoalNotFound
	}
	if err != nil {
		return nil, err
	}
	goal.ComputeTotals()
	return &goal, nil
}

// UpdateGoal 部分更新目标
// 先校验全部给定字段，任一字段非法则整体不更新
func (r *GoalRepository) UpdateGoal(id uint, patch GoalPatch) (*models.Goal, error) {
	updates := make(map[string]interface{})
	if patch.Name != nil {
		trimmed, err := models.ValidateGoalName(*patch.Name)
		if err != nil {
			return nil, err
		}
		updates["name"] = trimmed
	}
	if patch.TotalBudget != nil {
		if err := models.ValidateBudget(*patch.TotalBudget); err != nil {
			return nil, err
		}
		updates["total_budget"] = *patch.TotalBudget
	}

	var result *models.Goal
	err := r.db.Transaction(func(tx *gorm.DB) error {
		goal, err := lockGoal(tx, id)
		if err != nil {
			return err
		}
		if len(updates) > 0 {
			if err := tx.Model(goal).Updates(updates).Error; err != nil {
				return err
			}
			// 重新读取更新后的记录
			if err := tx.First(goal, goal.ID).Error; err != nil {
				return err
			}
		}
		if err := loadExpenses(tx, goal); err != nil {
			return err
		}
		result = goal
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteGoal 删除目标，内嵌支出在同一事务内级联删除
func (r *GoalRepository) DeleteGoal(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		goal, err := lockGoal(tx, id)
		if err != nil {
			return err
		}
		if err := tx.Where("goal_id = ?", id).Delete(&models.Expense{}).Error; err != nil {
			return err
		}
		return tx.Delete(goal).Error
	})
}

// AddExpense 向目标追加一笔支出，date 为零值时取当前时间
// 返回带最新派生字段的目标
func (r *GoalRepository) AddExpense(goalID uint, description string, amount float64, date time.Time) (*models.Goal, error) {
	trimmed, err := models.ValidateExpenseDescription(description)
	if err != nil {
		return nil, err
	}
	if err := models.ValidateAmount(amount); err != nil {
		return nil, err
	}
	if date.IsZero() {
		date = time.Now()
	}

	var result *models.Goal
	err = r.db.Transaction(func(tx *gorm.DB) error {
		goal, err := lockGoal(tx, goalID)
		if err != nil {
			return err
		}
		expense := models.Expense{
			GoalID:      goal.ID,
			Description: trimmed,
			Amount:      amount,
			Date:        date,
		}
		if err := tx.Create(&expense).Error; err != nil {
			return err
		}
		if err := touchGoal(tx, goal); err != nil {
			return err
		}
		if err := loadExpenses(tx, goal); err != nil {
			return err
		}
		result = goal
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateExpense 部分更新目标下的一笔支出，校验纪律与 UpdateGoal 一致
func (r *GoalRepository) UpdateExpense(goalID, expenseID uint, patch ExpensePatch) (*models.Goal, error) {
	updates := make(map[string]interface{})
	if patch.Description != nil {
		trimmed, err := models.ValidateExpenseDescription(*patch.Description)
		if err != nil {
			return nil, err
		}
		updates["description"] = trimmed
	}
	if patch.Amount != nil {
		if err := models.ValidateAmount(*patch.Amount); err != nil {
			return nil, err
		}
		updates["amount"] = *patch.Amount
	}
	if patch.Date != nil {
		updates["date"] = *patch.Date
	}

	var result *models.Goal
	err := r.db.Transaction(func(tx *gorm.DB) error {
		goal, err := lockGoal(tx, goalID)
		if err != nil {
			return err
		}
		var expense models.Expense
		err = tx.Where("id = ? AND goal_id = ?", expenseID, goalID).First(&expense).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrExpenseNotFound
		}
		if err != nil {
			return err
		}
		if len(updates) > 0 {
			if err := tx.Model(&expense).Updates(updates).Error; err != nil {
				return err
			}
			if err := touchGoal(tx, goal); err != nil {
				return err
			}
		}
		if err := loadExpenses(tx, goal); err != nil {
			return err
		}
		result = goal
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteExpense 删除目标下的一笔支出，返回带最新派生字段的目标
func (r *GoalRepository) DeleteExpense(goalID, expenseID uint) (*models.Goal, error) {
	var result *models.Goal
	err := r.db.Transaction(func(tx *gorm.DB) error {
		goal, err := lockGoal(tx, goalID)
		if err != nil {
			return err
		}
		var expense models.Expense
		err = tx.Where("id = ? AND goal_id = ?", expenseID, goalID).First(&expense).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrExpenseNotFound
		}
		if err != nil {
			return err
		}
		if err := tx.Delete(&expense).Error; err != nil {
			return err
		}
		if err := touchGoal(tx, goal); err != nil {
			return err
		}
		if err := loadExpenses(tx, goal); err != nil {
			return err
		}
		result = goal
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
