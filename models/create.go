package models

import "time"

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

type CreateUser struct {
	Username string `json:"username" binding:"required,min=3,max=20" example:"john_doe"`
	Email    string `json:"email" binding:"required,email" example:"john@example.com"`
	Password string `json:"password" binding:"required,max=72" example:"password123"`
}

// LoginForm is the OAuth2 password-grant form posted to /token. Username may
// also hold the account email.
type LoginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type CreateIncome struct {
	Amount     *float64 `json:"amount" binding:"required" example:"1500"`
	Source     string   `json:"source" binding:"required" example:"Salary"`
	Emoji      string   `json:"emoji" binding:"required" example:"💰"`
	SourceDate string   `json:"source_date" binding:"required,datetime=2006-01-02" example:"2024-06-01"`
}

type CreateExpense struct {
	Amount      *float64    `json:"amount" binding:"required" example:"42.5"`
	Category    string      `json:"category" binding:"required" example:"Groceries"`
	Subcategory Subcategory `json:"subcategory" binding:"required,oneof=Housing Food Transportation Utilities Healthcare Entertainment Others" example:"Food"`
	Emoji       string      `json:"emoji" binding:"required" example:"🛒"`
	SourceDate  string      `json:"source_date" binding:"required,datetime=2006-01-02" example:"2024-06-02"`
}

type MonthQuery struct {
	Month int `form:"month" binding:"required,min=1,max=12"`
}

type DeleteIncomeQuery struct {
	IncomeID string `form:"income_id" binding:"required"`
}

type DeleteExpenseQuery struct {
	ExpenseID string `form:"expense_id" binding:"required"`
}

// Income converts a validated request into a new ledger entry.
func (r CreateIncome) Income() (Income, error) {
	day, err := time.Parse(DateLayout, r.SourceDate)
	if err != nil {
		return Income{}, err
	}
	return NewIncome(*r.Amount, r.Source, r.Emoji, day), nil
}

// Expense converts a validated request into a new ledger entry.
func (r CreateExpense) Expense() (Expense, error) {
	day, err := time.Parse(DateLayout, r.SourceDate)
	if err != nil {
		return Expense{}, err
	}
	return NewExpense(*r.Amount, r.Category, r.Subcategory, r.Emoji, day), nil
}
