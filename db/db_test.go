package db

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Swamy718/Expense-Tracker-backend/models"
)

// RepositoryTestSuite runs the same checks against every engine.
type RepositoryTestSuite struct {
	suite.Suite
	open func(ctx context.Context) (Repository, error)
	repo Repository
	ctx  context.Context
}

func (s *RepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	repo, err := s.open(s.ctx)
	s.Require().NoError(err, "failed to open repository")
	s.repo = repo
}

func (s *RepositoryTestSuite) TearDownTest() {
	if s.repo != nil {
		s.repo.Close()
	}
}

func (s *RepositoryTestSuite) createUser(username, email string) *models.User {
	user := models.NewUser(username, email, "hash-"+username)
	s.Require().NoError(s.repo.CreateUser(s.ctx, user))
	return user
}

func (s *RepositoryTestSuite) TestCreateAndFindUser() {
	s.createUser("testuser", "test@example.com")

	fetched, err := s.repo.FindByUsername(s.ctx, "testuser")
	s.Require().NoError(err)
	s.Require().NotNil(fetched)
	s.Equal("testuser", fetched.Username)
	s.Equal("test@example.com", fetched.Email)
	s.Equal("hash-testuser", fetched.HashedPassword)
	s.Empty(fetched.IncomeList)
	s.Empty(fetched.ExpenseList)
	s.False(fetched.CreatedAt.IsZero())

	byEmail, err := s.repo.FindByUsernameOrEmail(s.ctx, "test@example.com")
	s.Require().NoError(err)
	s.Require().NotNil(byEmail)
	s.Equal("testuser", byEmail.Username)

	byName, err := s.repo.FindByUsernameOrEmail(s.ctx, "testuser")
	s.Require().NoError(err)
	s.Require().NotNil(byName)
	s.Equal("test@example.com", byName.Email)

	missing, err := s.repo.FindByUsername(s.ctx, "nonexistent")
	s.NoError(err)
	s.Nil(missing)

	missing, err = s.repo.FindByUsernameOrEmail(s.ctx, "nobody@example.com")
	s.NoError(err)
	s.Nil(missing)
}

func (s *RepositoryTestSuite) TestExists() {
	s.createUser("testuser", "test@example.com")

	found, err := s.repo.ExistsByUsername(s.ctx, "testuser")
	s.Require().NoError(err)
	s.True(found)

	found, err = s.repo.ExistsByUsername(s.ctx, "other")
	s.Require().NoError(err)
	s.False(found)

	found, err = s.repo.ExistsByEmail(s.ctx, "test@example.com")
	s.Require().NoError(err)
	s.True(found)

	found, err = s.repo.ExistsByEmail(s.ctx, "other@example.com")
	s.Require().NoError(err)
	s.False(found)
}

func (s *RepositoryTestSuite) TestUniqueIndexes() {
	s.createUser("testuser", "test@example.com")

	err := s.repo.CreateUser(s.ctx, models.NewUser("testuser", "another@example.com", "x"))
	s.ErrorIs(err, ErrDuplicateUsername)

	err = s.repo.CreateUser(s.ctx, models.NewUser("another", "test@example.com", "x"))
	s.ErrorIs(err, ErrDuplicateEmail)

	fetched, err := s.repo.FindByUsername(s.ctx, "testuser")
	s.Require().NoError(err)
	s.Require().NotNil(fetched)
	s.Equal("test@example.com", fetched.Email)
	s.Equal("hash-testuser", fetched.HashedPassword)
}

func (s *RepositoryTestSuite) TestDuplicateUsernameContainingEmail() {
	s.createUser("myemail", "mine@example.com")

	err := s.repo.CreateUser(s.ctx, models.NewUser("myemail", "fresh@example.com", "x"))
	s.ErrorIs(err, ErrDuplicateUsername)
}

func (s *RepositoryTestSuite) TestAppendAndRemoveIncome() {
	s.createUser("testuser", "test@example.com")
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	first := models.NewIncome(100, "Salary", "💰", day)
	second := models.NewIncome(50.25, "Gift", "🎁", day.AddDate(0, 0, 1))

	n, err := s.repo.AppendIncome(s.ctx, "testuser", first)
	s.Require().NoError(err)
	s.EqualValues(1, n)
	n, err = s.repo.AppendIncome(s.ctx, "testuser", second)
	s.Require().NoError(err)
	s.EqualValues(1, n)

	fetched, err := s.repo.FindByUsername(s.ctx, "testuser")
	s.Require().NoError(err)
	s.Require().Len(fetched.IncomeList, 2)
	s.Equal(first.ID, fetched.IncomeList[0].ID)
	s.Equal(100.0, fetched.IncomeList[0].Amount)
	s.Equal("Salary", fetched.IncomeList[0].Source)
	s.Equal("💰", fetched.IncomeList[0].Emoji)
	s.True(day.Equal(fetched.IncomeList[0].SourceDate))
	s.Equal(second.ID, fetched.IncomeList[1].ID)
	s.Empty(fetched.ExpenseList)

	n, err = s.repo.RemoveIncome(s.ctx, "testuser", first.ID)
	s.Require().NoError(err)
	s.EqualValues(1, n)

	fetched, err = s.repo.FindByUsername(s.ctx, "testuser")
	s.Require().NoError(err)
	s.Require().Len(fetched.IncomeList, 1)
	s.Equal(second.ID, fetched.IncomeList[0].ID)

	// a second delete of the same id reports nothing modified
	n, err = s.repo.RemoveIncome(s.ctx, "testuser", first.ID)
	s.Require().NoError(err)
	s.EqualValues(0, n)

	fetched, err = s.repo.FindByUsername(s.ctx, "testuser")
	s.Require().NoError(err)
	s.Len(fetched.IncomeList, 1)
}

func (s *RepositoryTestSuite) TestAppendAndRemoveExpense() {
	s.createUser("testuser", "test@example.com")
	day := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	rent := models.NewExpense(800, "Rent", models.Housing, "🏠", day)
	lunch := models.NewExpense(12.5, "Lunch", models.Food, "🍔", day)

	for _, e := range []models.Expense{rent, lunch} {
		n, err := s.repo.AppendExpense(s.ctx, "testuser", e)
		s.Require().NoError(err)
		s.EqualValues(1, n)
	}

	fetched, err := s.repo.FindByUsername(s.ctx, "testuser")
	s.Require().NoError(err)
	s.Require().Len(fetched.ExpenseList, 2)
	s.Equal(models.Housing, fetched.ExpenseList[0].Subcategory)
	s.Equal("Rent", fetched.ExpenseList[0].Category)
	s.Equal(models.Food, fetched.ExpenseList[1].Subcategory)

	n, err := s.repo.RemoveExpense(s.ctx, "testuser", lunch.ID)
	s.Require().NoError(err)
	s.EqualValues(1, n)

	n, err = s.repo.RemoveExpense(s.ctx, "testuser", "no-such-id")
	s.Require().NoError(err)
	s.EqualValues(0, n)

	fetched, err = s.repo.FindByUsername(s.ctx, "testuser")
	s.Require().NoError(err)
	s.Require().Len(fetched.ExpenseList, 1)
	s.Equal(rent.ID, fetched.ExpenseList[0].ID)
}

func (s *RepositoryTestSuite) TestMutationsForUnknownUser() {
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	n, err := s.repo.AppendIncome(s.ctx, "ghost", models.NewIncome(1, "x", "x", day))
	s.Require().NoError(err)
	s.EqualValues(0, n)

	n, err = s.repo.AppendExpense(s.ctx, "ghost", models.NewExpense(1, "x", models.Others, "x", day))
	s.Require().NoError(err)
	s.EqualValues(0, n)

	n, err = s.repo.RemoveIncome(s.ctx, "ghost", "id")
	s.Require().NoError(err)
	s.EqualValues(0, n)
}

func (s *RepositoryTestSuite) TestPing() {
	s.NoError(s.repo.Ping(s.ctx))
}

func TestSQLiteRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		open: func(ctx context.Context) (Repository, error) {
			return Open(ctx, "sqlite://:memory:")
		},
	})
}

func TestPostgresRepository(t *testing.T) {
	connStr := testURL(t, "POSTGRES_TEST_URL")
	suite.Run(t, &RepositoryTestSuite{
		open: func(ctx context.Context) (Repository, error) {
			store, err := NewPostgresStorage(ctx, connStr)
			if err != nil {
				return nil, err
			}
			if _, err := store.DB.ExecContext(ctx, "TRUNCATE TABLE users"); err != nil {
				store.Close()
				return nil, err
			}
			return store, nil
		},
	})
}

func TestMongoRepository(t *testing.T) {
	uri := testURL(t, "MONGO_TEST_URL")
	suite.Run(t, &RepositoryTestSuite{
		open: func(ctx context.Context) (Repository, error) {
			store, err := NewMongoStorage(ctx, uri, "expense_tracker_test")
			if err != nil {
				return nil, err
			}
			if _, err := store.users.DeleteMany(ctx, map[string]any{}); err != nil {
				store.Close()
				return nil, err
			}
			return store, nil
		},
	})
}

func TestOpenRejectsUnknownScheme(t *testing.T) {
	_, err := Open(context.Background(), "redis://localhost:6379")
	if err == nil {
		t.Fatal("Expected error for unsupported scheme, got nil")
	}
	_, err = Open(context.Background(), "no-scheme")
	if err == nil {
		t.Fatal("Expected error for url without scheme, got nil")
	}
}

func TestSupportedScheme(t *testing.T) {
	for url, want := range map[string]bool{
		"postgres://u:p@localhost/db":  true,
		"postgresql://localhost/db":    true,
		"sqlite://data/app.db":         true,
		"mongodb://localhost:27017":    true,
		"mongodb+srv://cluster.x/user": true,
		"mysql://localhost/db":         false,
		"":                             false,
	} {
		if got := SupportedScheme(url); got != want {
			t.Errorf("SupportedScheme(%q) = %v, want %v", url, got, want)
		}
	}
}

func TestMongoDatabaseName(t *testing.T) {
	if got := mongoDatabaseName("mongodb://localhost:27017"); got != DefaultMongoDatabase {
		t.Errorf("Expected %q, got %q", DefaultMongoDatabase, got)
	}
	if got := mongoDatabaseName("mongodb://localhost:27017/ledger?retryWrites=true"); got != "ledger" {
		t.Errorf("Expected 'ledger', got %q", got)
	}
}

// testURL loads ../.env like the api tests and skips when the engine is not
// configured.
func testURL(t *testing.T, key string) string {
	t.Helper()
	_ = godotenv.Load("../.env")
	url := os.Getenv(key)
	if url == "" {
		t.Skipf("%s is not set", key)
	}
	return url
}

func TestMongoDuplicateUsesIndexName(t *testing.T) {
	dup := func(msg string) error {
		return mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000, Message: msg}}}
	}

	err := mongoDuplicate(dup(`E11000 duplicate key error collection: user.user_collection index: username_1 dup key: { username: "myemail" }`))
	if !errors.Is(err, ErrDuplicateUsername) {
		t.Errorf("Expected ErrDuplicateUsername, got %v", err)
	}
	err = mongoDuplicate(dup(`E11000 duplicate key error collection: user.user_collection index: email_1 dup key: { email: "username@example.com" }`))
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Errorf("Expected ErrDuplicateEmail, got %v", err)
	}
	if err := mongoDuplicate(errors.New("connection refused")); err != nil {
		t.Errorf("Expected nil for other errors, got %v", err)
	}
	if err := mongoDuplicate(nil); err != nil {
		t.Errorf("Expected nil, got %v", err)
	}
}
