package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Swamy718/Expense-Tracker-backend/ledger"
	"github.com/Swamy718/Expense-Tracker-backend/models"
)

// AddIncome godoc
// @Summary   Record an income
// @Tags      income
// @Accept    json
// @Produce   json
// @Security  ApiKeyAuth
// @Param     income  body      models.CreateIncome  true  "Income"
// @Success   200     {object}  models.MessageResponse
// @Failure   400     {object}  models.ErrorResponse
// @Failure   401     {object}  models.ErrorResponse
// @Failure   404     {object}  models.ErrorResponse
// @Router    /income [post]
func (h *Handler) AddIncome(c *gin.Context) {
	var req models.CreateIncome
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	income, err := req.Income()
	if err != nil {
		badRequest(c, err)
		return
	}

	n, err := h.storage.AppendIncome(c.Request.Context(), c.GetString(usernameKey), income)
	if err != nil {
		h.internalError(c, err)
		return
	}
	if n == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "User not found or income not added"})
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Income added successfully"})
}

// DeleteIncome godoc
// @Summary   Delete an income by id
// @Tags      income
// @Produce   json
// @Security  ApiKeyAuth
// @Param     income_id  query     string  true  "Income id"
// @Success   200        {object}  models.MessageResponse
// @Failure   400        {object}  models.ErrorResponse
// @Failure   401        {object}  models.ErrorResponse
// @Failure   404        {object}  models.ErrorResponse
// @Router    /income [delete]
func (h *Handler) DeleteIncome(c *gin.Context) {
	var q models.DeleteIncomeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	n, err := h.storage.RemoveIncome(c.Request.Context(), c.GetString(usernameKey), q.IncomeID)
	if err != nil {
		h.internalError(c, err)
		return
	}
	if n == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Income not found or already deleted"})
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Income deleted successfully"})
}

// GetIncomes godoc
// @Summary   All incomes in insertion order
// @Tags      income
// @Produce   json
// @Security  ApiKeyAuth
// @Success   200  {object}  models.IncomeListResponse
// @Failure   401  {object}  models.ErrorResponse
// @Failure   404  {object}  models.ErrorResponse
// @Router    /income [get]
func (h *Handler) GetIncomes(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	items := make([]models.LedgerItem, 0, len(user.IncomeList))
	for _, i := range user.IncomeList {
		items = append(items, models.LedgerItem{
			Amount: i.Amount,
			Source: i.Source,
			Emoji:  i.Emoji,
			Date:   i.SourceDate.Format(models.DateLayout),
			ID:     i.ID,
		})
	}
	c.JSON(http.StatusOK, models.IncomeListResponse{Incomes: items})
}

// IncomesByMonth godoc
// @Summary   Incomes dated in a month of any year
// @Tags      income
// @Produce   json
// @Security  ApiKeyAuth
// @Param     month  query     int  true  "Month 1-12"
// @Success   200    {object}  models.IncomesByMonthResponse
// @Failure   400    {object}  models.ErrorResponse
// @Failure   401    {object}  models.ErrorResponse
// @Failure   404    {object}  models.ErrorResponse
// @Router    /incomebymonth [get]
func (h *Handler) IncomesByMonth(c *gin.Context) {
	var q models.MonthQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	filtered := ledger.ByMonth(user.IncomeList, q.Month)
	items := make([]models.IncomeMonthItem, 0, len(filtered))
	for _, i := range filtered {
		items = append(items, models.IncomeMonthItem{Amount: i.Amount, Source: i.Source, Emoji: i.Emoji, Date: i.SourceDate})
	}
	c.JSON(http.StatusOK, models.IncomesByMonthResponse{Incomes: items})
}

// DailyIncomes godoc
// @Summary   Income per day for the latest days that have incomes
// @Tags      income
// @Produce   json
// @Security  ApiKeyAuth
// @Success   200  {object}  models.DailyIncomesResponse
// @Failure   401  {object}  models.ErrorResponse
// @Failure   404  {object}  models.ErrorResponse
// @Router    /income/last10days [get]
// @Router    /income/last5days [get]
func (h *Handler) DailyIncomes(days int) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := h.currentUser(c)
		if !ok {
			return
		}
		dates, totals := ledger.DailyTotalsLastN(user.IncomeList, days)
		c.JSON(http.StatusOK, models.DailyIncomesResponse{Dates: dates, Incomes: totals})
	}
}

// RecentIncomes godoc
// @Summary   Five latest incomes, newest first
// @Tags      income
// @Produce   json
// @Security  ApiKeyAuth
// @Success   200  {object}  models.RecentIncomesResponse
// @Failure   401  {object}  models.ErrorResponse
// @Failure   404  {object}  models.ErrorResponse
// @Router    /recent-incomes [get]
func (h *Handler) RecentIncomes(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.RecentIncomesResponse{Incomes: ledger.Recent(user.IncomeList, ledger.RecentLimit)})
}
