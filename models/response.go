package models

import "time"

type MessageResponse struct {
	Message string `json:"message" example:"User Created Successfully"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType   string `json:"token_type" example:"bearer"`
}

type ProfileResponse struct {
	Username string `json:"username" example:"john_doe"`
	Email    string `json:"email" example:"john@example.com"`
}

type InfoResponse struct {
	Income  float64 `json:"income" example:"2500"`
	Expense float64 `json:"expense" example:"1200.5"`
}

type RecentTransResponse struct {
	View []Transaction `json:"view"`
}

// LedgerItem is the flat list row of GET /income and GET /expense. For
// expenses Source carries the category.
type LedgerItem struct {
	Amount float64 `json:"amount" example:"42.5"`
	Source string  `json:"source" example:"Groceries"`
	Emoji  string  `json:"emoji" example:"🛒"`
	Date   string  `json:"date" example:"2024-06-02"`
	ID     string  `json:"id" example:"3f1c9a52-8d0e-4c4e-9a0c-1b2f3d4e5f60"`
}

type IncomeListResponse struct {
	Incomes []LedgerItem `json:"incomes"`
}

type ExpenseListResponse struct {
	Expenses []LedgerItem `json:"expenses"`
}

type IncomeMonthItem struct {
	Amount float64   `json:"amount"`
	Source string    `json:"source"`
	Emoji  string    `json:"emoji"`
	Date   time.Time `json:"date"`
}

type ExpenseMonthItem struct {
	Amount      float64     `json:"amount"`
	Category    string      `json:"category"`
	Subcategory Subcategory `json:"subcategory"`
	Emoji       string      `json:"emoji"`
	Date        time.Time   `json:"date"`
}

type IncomesByMonthResponse struct {
	Incomes []IncomeMonthItem `json:"incomes"`
}

type ExpensesByMonthResponse struct {
	Expenses []ExpenseMonthItem `json:"expenses"`
}

type DailyIncomesResponse struct {
	Dates   []string  `json:"dates" example:"2024-06-01,2024-06-02"`
	Incomes []float64 `json:"incomes" example:"100,250"`
}

type DailyExpensesResponse struct {
	Dates    []string  `json:"dates" example:"2024-06-01,2024-06-02"`
	Expenses []float64 `json:"expenses" example:"12.5,40"`
}

type SubcategoryResponse struct {
	Expenses map[Subcategory]float64 `json:"expenses"`
}

type RecentIncomesResponse struct {
	Incomes []Income `json:"incomes"`
}

type RecentExpensesResponse struct {
	Expenses []Expense `json:"expenses"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"error"`
}
