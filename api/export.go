package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"

	"budget/database"
	"budget/repository"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler 导出处理器，按目标导出支出明细
type ExportHandler struct {
	repo *repository.GoalRepository
}

// NewExportHandler 创建导出处理器
func NewExportHandler() *ExportHandler {
	return &ExportHandler{repo: repository.NewGoalRepository(database.GetDB())}
}

// ExportCSV 导出目标支出为 CSV
// @Summary 导出目标支出为 CSV
// @Description 导出指定目标的全部支出明细为 CSV 文件，末尾附汇总行
// @Tags 导出
// @Produce text/csv
// @Param id path int true "目标ID"
// @Success 200 {file} file "CSV 文件"
// @Failure 400 {object} MessageResponse "ID格式错误"
// @Failure 404 {object} MessageResponse "目标不存在"
// @Router /api/goals/{id}/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	id, err := repository.ParseID(c.Param("id"))
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	goal, err := h.repo.GetGoal(id)
	if err != nil {
		RespondRepoError(c, err, "查询数据失败")
		return
	}

	// 生成 CSV
	buf := new(bytes.Buffer)
	// 添加 BOM 以支持 Excel 中文显示
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)

	// 写入表头
	headers := []string{"ID", "描述", "金额", "日期"}
	if err := writer.Write(headers); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	// 写入数据
	for _, expense := range goal.Expenses {
		row := []string{
			fmt.Sprintf("%d", expense.ID),
			expense.Description,
			fmt.Sprintf("%.2f", expense.Amount),
			expense.Date.Format("2006-01-02 15:04:05"),
		}
		if err := writer.Write(row); err != nil {
			InternalError(c, "生成 CSV 失败")
			return
		}
	}

	// 写入汇总行
	summary := []string{
		"合计",
		fmt.Sprintf("预算 %.2f / 剩余 %.2f", goal.TotalBudget, goal.Remaining),
		fmt.Sprintf("%.2f", goal.TotalSpent),
		fmt.Sprintf("共 %d 条记录", len(goal.Expenses)),
	}
	if err := writer.Write(summary); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	// 设置响应头
	filename := fmt.Sprintf("goal_%d_expenses.csv", goal.ID)
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))

	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportExcel 导出目标支出为 Excel
// @Summary 导出目标支出为 Excel
// @Description 导出指定目标的全部支出明细为 xlsx 文件，末尾附汇总行
// @Tags 导出
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path int true "目标ID"
// @Success 200 {file} file "Excel 文件"
// @Failure 400 {object} MessageResponse "ID格式错误"
// @Failure 404 {object} MessageResponse "目标不存在"
// @Router /api/goals/{id}/export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	id, err := repository.ParseID(c.Param("id"))
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	goal, err := h.repo.GetGoal(id)
	if err != nil {
		RespondRepoError(c, err, "查询数据失败")
		return
	}

	// 创建 Excel 文件
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "支出明细"
	f.SetSheetName("Sheet1", sheetName)

	// 设置表头样式
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	// 数据样式
	dataStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	// 设置列宽
	f.SetColWidth(sheetName, "A", "A", 10)
	f.SetColWidth(sheetName, "B", "B", 30)
	f.SetColWidth(sheetName, "C", "C", 15)
	f.SetColWidth(sheetName, "D", "D", 20)

	// 写入表头
	headers := []string{"ID", "描述", "金额", "日期"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	// 写入数据
	for i, expense := range goal.Expenses {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), expense.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), expense.Description)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), expense.Amount)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), expense.Date.Format("2006-01-02 15:04:05"))
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("D%d", row), dataStyle)
	}

	// 添加汇总行
	summaryRow := len(goal.Expenses) + 2
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	f.SetCellValue(sheetName, fmt.Sprintf("A%d", summaryRow), "合计")
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", summaryRow),
		fmt.Sprintf("预算 %.2f / 剩余 %.2f", goal.TotalBudget, goal.Remaining))
	f.SetCellValue(sheetName, fmt.Sprintf("C%d", summaryRow), goal.TotalSpent)
	f.SetCellValue(sheetName, fmt.Sprintf("D%d", summaryRow), fmt.Sprintf("共 %d 条记录", len(goal.Expenses)))
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("D%d", summaryRow), summaryStyle)

	// 设置响应头
	filename := fmt.Sprintf("goal_%d_expenses.xlsx", goal.ID)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", filename))

	// 写入响应
	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "生成 Excel 失败")
		return
	}
}

// ExportJSON 导出目标支出为 JSON
// @Summary 导出目标支出为 JSON
// @Description 导出指定目标的完整快照（含支出列表和派生字段）为 JSON 附件
// @Tags 导出
// @Produce json
// @Param id path int true "目标ID"
// @Success 200 {object} models.Goal "导出成功"
// @Failure 400 {object} MessageResponse "ID格式错误"
// @Failure 404 {object} MessageResponse "目标不存在"
// @Router /api/goals/{id}/export/json [get]
func (h *ExportHandler) ExportJSON(c *gin.Context) {
	id, err := repository.ParseID(c.Param("id"))
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	goal, err := h.repo.GetGoal(id)
	if err != nil {
		RespondRepoError(c, err, "查询数据失败")
		return
	}

	filename := fmt.Sprintf("goal_%d.json", goal.ID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.JSON(http.StatusOK, goal)
}
