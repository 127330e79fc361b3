package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Swamy718/Expense-Tracker-backend/models"
)

const (
	incomeColumn  = "income_list"
	expenseColumn = "expense_list"
)

// Storage keeps users in a SQL table, the two ledgers as JSON arrays in the
// user row. Postgres and SQLite differ only in the dialect.
type Storage struct {
	DB      *sql.DB
	dialect dialect
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

func (s *Storage) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return s.exists(ctx, "username", username)
}

func (s *Storage) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return s.exists(ctx, "email", email)
}

func (s *Storage) exists(ctx context.Context, column, value string) (bool, error) {
	var found bool
	err := s.DB.QueryRowContext(ctx, s.dialect.existsSQL(column), value).Scan(&found)
	if err != nil {
		return false, fmt.Errorf("check %s: %w", column, err)
	}
	return found, nil
}

func (s *Storage) CreateUser(ctx context.Context, user *models.User) error {
	incomes, err := json.Marshal(nonNil(user.IncomeList))
	if err != nil {
		return err
	}
	expenses, err := json.Marshal(nonNil(user.ExpenseList))
	if err != nil {
		return err
	}

	_, err = s.DB.ExecContext(ctx, s.dialect.insertUserSQL(),
		user.Username, user.Email, user.HashedPassword, user.CreatedAt, string(incomes), string(expenses))
	if err != nil {
		if dup := s.dialect.duplicate(err); dup != nil {
			return dup
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *Storage) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.findBy(ctx, "username", username)
}

func (s *Storage) FindByUsernameOrEmail(ctx context.Context, identifier string) (*models.User, error) {
	user, err := s.findBy(ctx, "username", identifier)
	if err != nil || user != nil {
		return user, err
	}
	return s.findBy(ctx, "email", identifier)
}

func (s *Storage) findBy(ctx context.Context, column, value string) (*models.User, error) {
	var (
		u                 models.User
		incomes, expenses []byte
	)
	err := s.DB.QueryRowContext(ctx, s.dialect.selectUserSQL(column), value).
		Scan(&u.Username, &u.Email, &u.HashedPassword, &u.CreatedAt, &incomes, &expenses)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select user by %s: %w", column, err)
	}
	if err := json.Unmarshal(incomes, &u.IncomeList); err != nil {
		return nil, fmt.Errorf("decode %s: %w", incomeColumn, err)
	}
	if err := json.Unmarshal(expenses, &u.ExpenseList); err != nil {
		return nil, fmt.Errorf("decode %s: %w", expenseColumn, err)
	}
	u.CreatedAt = u.CreatedAt.UTC()
	return &u, nil
}

func (s *Storage) AppendIncome(ctx context.Context, username string, income models.Income) (int64, error) {
	return s.push(ctx, incomeColumn, username, income)
}

func (s *Storage) AppendExpense(ctx context.Context, username string, expense models.Expense) (int64, error) {
	return s.push(ctx, expenseColumn, username, expense)
}

func (s *Storage) RemoveIncome(ctx context.Context, username, id string) (int64, error) {
	return s.pull(ctx, incomeColumn, username, id)
}

func (s *Storage) RemoveExpense(ctx context.Context, username, id string) (int64, error) {
	return s.pull(ctx, expenseColumn, username, id)
}

func (s *Storage) push(ctx context.Context, column, username string, entry any) (int64, error) {
	doc, err := json.Marshal(entry)
	if err != nil {
		return 0, err
	}
	query, args := s.dialect.pushSQL(column, username, string(doc))
	res, err := s.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("append to %s: %w", column, err)
	}
	return res.RowsAffected()
}

func (s *Storage) pull(ctx context.Context, column, username, id string) (int64, error) {
	query, args := s.dialect.pullSQL(column, username, id)
	res, err := s.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("remove from %s: %w", column, err)
	}
	return res.RowsAffected()
}

func nonNil[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}
