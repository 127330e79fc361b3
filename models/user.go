package models

import "time"

// User is the single persisted record per account. Income and expense
// entries live embedded in it.
type User struct {
	Username       string    `json:"username" bson:"username"`
	Email          string    `json:"email" bson:"email"`
	HashedPassword string    `json:"-" bson:"hashed_password"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
	IncomeList     []Income  `json:"income_list" bson:"income_list"`
	ExpenseList    []Expense `json:"expense_list" bson:"expense_list"`
}

// NewUser returns a user with empty ledgers.
func NewUser(username, email, hashedPassword string) *User {
	return &User{
		Username:       username,
		Email:          email,
		HashedPassword: hashedPassword,
		CreatedAt:      time.Now().UTC(),
		IncomeList:     []Income{},
		ExpenseList:    []Expense{},
	}
}
