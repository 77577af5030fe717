package api

import (
	"net/http"
	"strings"
	"time"

	"budget/database"
	"budget/models"
	"budget/repository"

	"github.com/gin-gonic/gin"
)

// ExpenseHandler 支出记录处理器，支出只能挂在某个目标下操作
type ExpenseHandler struct {
	repo *repository.GoalRepository
}

// NewExpenseHandler 创建支出记录处理器
func NewExpenseHandler() *ExpenseHandler {
	return &ExpenseHandler{repo: repository.NewGoalRepository(database.GetDB())}
}

// CreateExpenseRequest 新增支出请求
// amount 允许数字或数字字符串，date 可省略（默认当前时间）
type CreateExpenseRequest struct {
	Description string      `json:"description" example:"机票"`
	Amount      interface{} `json:"amount" swaggertype:"number" example:"599.5"`
	Date        string      `json:"date" example:"2024-06-01"`
}

// UpdateExpenseRequest 更新支出请求，未携带的字段不做修改
type UpdateExpenseRequest struct {
	Description *string     `json:"description" example:"机票"`
	Amount      interface{} `json:"amount" swaggertype:"number" example:"650"`
	Date        *string     `json:"date" example:"2024-06-02"`
}

// Add 新增支出
// @Summary 新增支出
// @Description 向目标追加一笔支出，返回带最新派生字段的目标
// @Tags 支出记录
// @Accept json
// @Produce json
// @Param id path int true "目标ID"
// @Param request body CreateExpenseRequest true "支出信息"
// @Success 201 {object} models.Goal "新增成功"
// @Failure 400 {object} MessageResponse "ID或字段不合法"
// @Failure 404 {object} MessageResponse "目标不存在"
// @Router /api/goals/{id}/expenses [post]
func (h *ExpenseHandler) Add(c *gin.Context) {
	goalID, err := repository.ParseID(c.Param("id"))
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "请求体格式错误")
		return
	}

	amount, err := toNumber("amount", req.Amount)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	var date time.Time
	if strings.TrimSpace(req.Date) != "" {
		date, err = models.ParseExpenseDate(req.Date)
		if err != nil {
			BadRequest(c, err.Error())
			return
		}
	}

	goal, err := h.repo.AddExpense(goalID, req.Description, amount, date)
	if err != nil {
		RespondRepoError(c, err, "新增支出失败")
		return
	}
	c.JSON(http.StatusCreated, goal)
}

// Update 更新支出
// @Summary 更新支出
// @Description 部分更新目标下的一笔支出，任一给定字段非法则整体不更新
// @Tags 支出记录
// @Accept json
// @Produce json
// @Param id path int true "目标ID"
// @Param expenseId path int true "支出ID"
// @Param request body UpdateExpenseRequest true "要更新的字段"
// @Success 200 {object} models.Goal "更新成功"
// @Failure 400 {object} MessageResponse "ID或字段不合法"
// @Failure 404 {object} MessageResponse "目标或支出不存在"
// @Router /api/goals/{id}/expenses/{expenseId} [put]
func (h *ExpenseHandler) Update(c *gin.Context) {
	goalID, err := repository.ParseID(c.Param("id"))
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	expenseID, err := repository.ParseID(c.Param("expenseId"))
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "请求体格式错误")
		return
	}

	patch := repository.ExpensePatch{Description: req.Description}
	if req.Amount != nil {
		amount, err := toNumber("amount", req.Amount)
		if err != nil {
			BadRequest(c, err.Error())
			return
		}
		patch.Amount = &amount
	}
	if req.Date != nil && strings.TrimSpace(*req.Date) != "" {
		date, err := models.ParseExpenseDate(*req.Date)
		if err != nil {
			BadRequest(c, err.Error())
			return
		}
		patch.Date = &date
	}

	goal, err := h.repo.UpdateExpense(goalID, expenseID, patch)
	if err != nil {
		RespondRepoError(c, err, "更新支出失败")
		return
	}
	c.JSON(http.StatusOK, goal)
}

// Delete 删除支出
// @Summary 删除支出
// @Description 删除目标下的一笔支出，返回带最新派生字段的目标
// @Tags 支出记录
// @Produce json
// @Param id path int true "目标ID"
// @Param expenseId path int true "支出ID"
// @Success 200 {object} models.Goal "删除成功"
// @Failure 400 {object} MessageResponse "ID格式错误"
// @Failure 404 {object} MessageResponse "目标或支出不存在"
// @Router /api/goals/{id}/expenses/{expenseId} [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	goalID, err := repository.ParseID(c.Param("id"))
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	expenseID, err := repository.ParseID(c.Param("expenseId"))
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	goal, err := h.repo.DeleteExpense(goalID, expenseID)
	if err != nil {
		RespondRepoError(c, err, "删除支出失败")
		return
	}
	c.JSON(http.StatusOK, goal)
}
