package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Swamy718/Expense-Tracker-backend/ledger"
	"github.com/Swamy718/Expense-Tracker-backend/models"
)

// AddExpense godoc
// @Summary   Record an expense
// @Tags      expense
// @Accept    json
// @Produce   json
// @Security  ApiKeyAuth
// @Param     expense  body      models.CreateExpense  true  "Expense"
// @Success   201      {object}  models.MessageResponse
// @Failure   400      {object}  models.ErrorResponse
// @Failure   401      {object}  models.ErrorResponse
// @Failure   404      {object}  models.ErrorResponse
// @Router    /expense [post]
func (h *Handler) AddExpense(c *gin.Context) {
	var req models.CreateExpense
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	expense, err := req.Expense()
	if err != nil {
		badRequest(c, err)
		return
	}

	n, err := h.storage.AppendExpense(c.Request.Context(), c.GetString(usernameKey), expense)
	if err != nil {
		h.internalError(c, err)
		return
	}
	if n == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: msgUserNotFound})
		return
	}
	c.JSON(http.StatusCreated, models.MessageResponse{Message: "Expense added successfully"})
}

// DeleteExpense godoc
// @Summary   Delete an expense by id
// @Tags      expense
// @Produce   json
// @Security  ApiKeyAuth
// @Param     expense_id  query     string  true  "Expense id"
// @Success   200         {object}  models.MessageResponse
// @Failure   400         {object}  models.ErrorResponse
// @Failure   401         {object}  models.ErrorResponse
// @Failure   404         {object}  models.ErrorResponse
// @Router    /expense [delete]
func (h *Handler) DeleteExpense(c *gin.Context) {
	var q models.DeleteExpenseQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	n, err := h.storage.RemoveExpense(c.Request.Context(), c.GetString(usernameKey), q.ExpenseID)
	if err != nil {
		h.internalError(c, err)
		return
	}
	if n == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Expense not found or already deleted"})
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Expense deleted successfully"})
}

// GetExpenses godoc
// @Summary      All expenses in insertion order
// @Description  The category is reported under "source".
// @Tags         expense
// @Produce      json
// @Security     ApiKeyAuth
// @Success      200  {object}  models.ExpenseListResponse
// @Failure      401  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /expense [get]
func (h *Handler) GetExpenses(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	items := make([]models.LedgerItem, 0, len(user.ExpenseList))
	for _, e := range user.ExpenseList {
		items = append(items, models.LedgerItem{
			Amount: e.Amount,
			Source: e.Category,
			Emoji:  e.Emoji,
			Date:   e.SourceDate.Format(models.DateLayout),
			ID:     e.ID,
		})
	}
	c.JSON(http.StatusOK, models.ExpenseListResponse{Expenses: items})
}

// ExpensesByMonth godoc
// @Summary   Expenses dated in a month of any year
// @Tags      expense
// @Produce   json
// @Security  ApiKeyAuth
// @Param     month  query     int  true  "Month 1-12"
// @Success   200    {object}  models.ExpensesByMonthResponse
// @Failure   400    {object}  models.ErrorResponse
// @Failure   401    {object}  models.ErrorResponse
// @Failure   404    {object}  models.ErrorResponse
// @Router    /expensebymonth [get]
func (h *Handler) ExpensesByMonth(c *gin.Context) {
	var q models.MonthQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	filtered := ledger.ByMonth(user.ExpenseList, q.Month)
	items := make([]models.ExpenseMonthItem, 0, len(filtered))
	for _, e := range filtered {
		items = append(items, models.ExpenseMonthItem{
			Amount:      e.Amount,
			Category:    e.Category,
			Subcategory: e.Subcategory,
			Emoji:       e.Emoji,
			Date:        e.SourceDate,
		})
	}
	c.JSON(http.StatusOK, models.ExpensesByMonthResponse{Expenses: items})
}

// DailyExpenses godoc
// @Summary   Expense per day for the latest days that have expenses
// @Tags      expense
// @Produce   json
// @Security  ApiKeyAuth
// @Success   200  {object}  models.DailyExpensesResponse
// @Failure   401  {object}  models.ErrorResponse
// @Failure   404  {object}  models.ErrorResponse
// @Router    /expense/last10days [get]
func (h *Handler) DailyExpenses(days int) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := h.currentUser(c)
		if !ok {
			return
		}
		dates, totals := ledger.DailyTotalsLastN(user.ExpenseList, days)
		c.JSON(http.StatusOK, models.DailyExpensesResponse{Dates: dates, Expenses: totals})
	}
}

// ExpensesBySubcategory godoc
// @Summary   Expense totals per subcategory
// @Tags      expense
// @Produce   json
// @Security  ApiKeyAuth
// @Success   200  {object}  models.SubcategoryResponse
// @Failure   401  {object}  models.ErrorResponse
// @Failure   404  {object}  models.ErrorResponse
// @Router    /expense/subcategory [get]
func (h *Handler) ExpensesBySubcategory(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.SubcategoryResponse{Expenses: ledger.BySubcategory(user.ExpenseList)})
}

// RecentExpenses godoc
// @Summary   Five latest expenses, newest first
// @Tags      expense
// @Produce   json
// @Security  ApiKeyAuth
// @Success   200  {object}  models.RecentExpensesResponse
// @Failure   401  {object}  models.ErrorResponse
// @Failure   404  {object}  models.ErrorResponse
// @Router    /recent-expenses [get]
func (h *Handler) RecentExpenses(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.RecentExpensesResponse{Expenses: ledger.Recent(user.ExpenseList, ledger.RecentLimit)})
}
