package api

import (
	"net/http"

	"budget/database"
	"budget/repository"

	"github.com/gin-gonic/gin"
)

// GoalHandler 预算目标处理器
type GoalHandler struct {
	repo *repository.GoalRepository
}

// NewGoalHandler 创建预算目标处理器
func NewGoalHandler() *GoalHandler {
	return &GoalHandler{repo: repository.NewGoalRepository(database.GetDB())}
}

// CreateGoalRequest 创建目标请求
// totalBudget 允许数字或数字字符串
type CreateGoalRequest struct {
	Name        string      `json:"name" example:"旅行基金"`
	TotalBudget interface{} `json:"totalBudget" swaggertype:"number" example:"1000"`
}

// UpdateGoalRequest 更新目标请求，未携带的字段不做修改
type UpdateGoalRequest struct {
	Name        *string     `json:"name" example:"旅行基金"`
	TotalBudget interface{} `json:"totalBudget" swaggertype:"number" example:"1500"`
}

// DeleteGoalResponse 删除目标响应
type DeleteGoalResponse struct {
	Message string `json:"message"`
	ID      uint   `json:"id"`
}

// List 获取目标列表
// @Summary 获取目标列表
// @Description 获取全部预算目标，按创建时间倒序排列，派生字段现算
// @Tags 预算目标
// @Produce json
// @Success 200 {array} models.Goal "目标列表"
// @Failure 500 {object} MessageResponse "查询失败"
// @Router /api/goals [get]
func (h *GoalHandler) List(c *gin.Context) {
	goals, err := h.repo.ListGoals()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "获取目标列表失败"))
		return
	}
	c.JSON(http.StatusOK, goals)
}

// Create 创建目标
// @Summary 创建目标
// @Description 创建一个新的预算目标，初始支出列表为空
// @Tags 预算目标
// @Accept json
// @Produce json
// @Param request body CreateGoalRequest true "目标信息"
// @Success 201 {object} models.Goal "创建成功"
// @Failure 400 {object} MessageResponse "名称或预算不合法"
// @Router /api/goals [post]
func (h *GoalHandler) Create(c *gin.Context) {
	var req CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "请求体格式错误")
		return
	}

	budget, err := toNumber("totalBudget", req.TotalBudget)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	goal, err := h.repo.CreateGoal(req.Name, budget)
	if err != nil {
		RespondRepoError(c, err, "创建目标失败")
		return
	}
	c.JSON(http.StatusCreated, goal)
}

// Get 获取单个目标
// @Summary 获取单个目标
// @Description 根据ID获取目标详情，含支出列表和派生字段
// @Tags 预算目标
// @Produce json
// @Param id path int true "目标ID"
// @Success 200 {object} models.Goal "获取成功"
// @Failure 400 {object} MessageResponse "ID格式错误"
// @Failure 404 {object} MessageResponse "目标不存在"
// @Router /api/goals/{id} [get]
func (h *GoalHandler) Get(c *gin.Context) {
	id, err := repository.ParseID(c.Param("id"))
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	goal, err := h.repo.GetGoal(id)
	if err != nil {
		RespondRepoError(c, err, "获取目标失败")
		return
	}
	c.JSON(http.StatusOK, goal)
}

// Update 更新目标
// @Summary 更新目标
// @Description 部分更新目标的名称和总预算，任一给定字段非法则整体不更新
// @Tags 预算目标
// @Accept json
// @Produce json
// @Param id path int true "目标ID"
// @Param request body UpdateGoalRequest true "要更新的字段"
// @Success 200 {object} models.Goal "更新成功"
// @Failure 400 {object} MessageResponse "ID或字段不合法"
// @Failure 404 {object} MessageResponse "目标不存在"
// @Router /api/goals/{id} [put]
func (h *GoalHandler) Update(c *gin.Context) {
	id, err := repository.ParseID(c.Param("id"))
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	var req UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "请求体格式错误")
		return
	}

	patch := repository.GoalPatch{Name: req.Name}
	if req.TotalBudget != nil {
		budget, err := toNumber("totalBudget", req.TotalBudget)
		if err != nil {
			BadRequest(c, err.Error())
			return
		}
		patch.TotalBudget = &budget
	}

	goal, err := h.repo.UpdateGoal(id, patch)
	if err != nil {
		RespondRepoError(c, err, "更新目标失败")
		return
	}
	c.JSON(http.StatusOK, goal)
}

// Delete 删除目标
// @Summary 删除目标
// @Description 删除目标及其全部内嵌支出
// @Tags 预算目标
// @Produce json
// @Param id path int true "目标ID"
// @Success 200 {object} DeleteGoalResponse "删除成功"
// @Failure 400 {object} MessageResponse "ID格式错误"
// @Failure 404 {object} MessageResponse "目标不存在"
// @Router /api/goals/{id} [delete]
func (h *GoalHandler) Delete(c *gin.Context) {
	id, err := repository.ParseID(c.Param("id"))
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	if err := h.repo.DeleteGoal(id); err != nil {
		RespondRepoError(c, err, "删除目标失败")
		return
	}
	c.JSON(http.StatusOK, DeleteGoalResponse{Message: "已删除", ID: id})
}
