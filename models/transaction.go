package models

import (
	"time"

	"github.com/google/uuid"
)

// Subcategory is the fixed grouping every expense belongs to.
type Subcategory string

const (
	Housing        Subcategory = "Housing"
	Food           Subcategory = "Food"
	Transportation Subcategory = "Transportation"
	Utilities      Subcategory = "Utilities"
	Healthcare     Subcategory = "Healthcare"
	Entertainment  Subcategory = "Entertainment"
	Others         Subcategory = "Others"
)

// Subcategories lists the accepted subcategories in display order.
var Subcategories = []Subcategory{Housing, Food, Transportation, Utilities, Healthcare, Entertainment, Others}

func (s Subcategory) Valid() bool {
	for _, c := range Subcategories {
		if s == c {
			return true
		}
	}
	return false
}

// Kind tags an entry in the merged income/expense view.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

type Income struct {
	ID         string    `json:"id" bson:"id"`
	Amount     float64   `json:"amount" bson:"amount"`
	Source     string    `json:"source" bson:"source"`
	Emoji      string    `json:"emoji" bson:"emoji"`
	SourceDate time.Time `json:"source_date" bson:"source_date"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}

type Expense struct {
	ID          string      `json:"id" bson:"id"`
	Amount      float64     `json:"amount" bson:"amount"`
	Category    string      `json:"category" bson:"category"`
	Subcategory Subcategory `json:"subcategory" bson:"subcategory"`
	Emoji       string      `json:"emoji" bson:"emoji"`
	SourceDate  time.Time   `json:"source_date" bson:"source_date"`
	CreatedAt   time.Time   `json:"created_at" bson:"created_at"`
}

// Transaction is an income or expense tagged with its kind.
type Transaction struct {
	Type        Kind        `json:"type"`
	ID          string      `json:"id"`
	Amount      float64     `json:"amount"`
	Source      string      `json:"source,omitempty"`
	Category    string      `json:"category,omitempty"`
	Subcategory Subcategory `json:"subcategory,omitempty"`
	Emoji       string      `json:"emoji"`
	SourceDate  time.Time   `json:"source_date"`
	CreatedAt   time.Time   `json:"created_at"`
}

func (i Income) Date() time.Time { return i.SourceDate }
func (i Income) Value() float64 { return i.Amount }
func (e Expense) Date() time.Time { return e.SourceDate }
func (e Expense) Value() float64 { return e.Amount }

func (t Transaction) Date() time.Time { return t.SourceDate }
func (t Transaction) Value() float64 { return t.Amount }

// StartOfDay drops the time component, keeping the calendar date in UTC.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NewIncome builds an income with a fresh id and creation time.
func NewIncome(amount float64, source, emoji string, sourceDate time.Time) Income {
	return Income{
		ID:         uuid.NewString(),
		Amount:     amount,
		Source:     source,
		Emoji:      emoji,
		SourceDate: StartOfDay(sourceDate),
		CreatedAt:  time.Now().UTC(),
	}
}

// NewExpense builds an expense with a fresh id and creation time.
func NewExpense(amount float64, category string, sub Subcategory, emoji string, sourceDate time.Time) Expense {
	return Expense{
		ID:          uuid.NewString(),
		Amount:      amount,
		Category:    category,
		Subcategory: sub,
		Emoji:       emoji,
		SourceDate:  StartOfDay(sourceDate),
		CreatedAt:   time.Now().UTC(),
	}
}

func (i Income) Tagged() Transaction {
	return Transaction{
		Type:       KindIncome,
		ID:         i.ID,
		Amount:     i.Amount,
		Source:     i.Source,
		Emoji:      i.Emoji,
		SourceDate: i.SourceDate,
		CreatedAt:  i.CreatedAt,
	}
}

func (e Expense) Tagged() Transaction {
	return Transaction{
		Type:        KindExpense,
		ID:          e.ID,
		Amount:      e.Amount,
		Category:    e.Category,
		Subcategory: e.Subcategory,
		Emoji:       e.Emoji,
		SourceDate:  e.SourceDate,
		CreatedAt:   e.CreatedAt,
	}
}
