package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/Swamy718/Expense-Tracker-backend/db"
	"github.com/Swamy718/Expense-Tracker-backend/models"
)

const defaultDatabaseURL = "sqlite://expense-tracker.db"

var incomeSources = []string{"Salary", "Freelance", "Dividends", "Gift", "Refund", "Bonus"}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	fs.SetOutput(stderr)

	username := fs.String("user", "", "Existing username to fill")
	incomes := fs.Int("incomes", 20, "Number of incomes")
	expenses := fs.Int("expenses", 60, "Number of expenses")
	days := fs.Int("days", 90, "Spread entries over this many past days")
	seed := fs.Int64("seed", 0, "Random seed (0 picks one)")
	databaseURL := fs.String("db", defaultDatabaseURL, "Database url")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *username == "" {
		fmt.Fprintln(stdout, "Usage: seed -user <username> [-incomes n] [-expenses n] [-days n] [-db <database_url>]")
		fs.PrintDefaults()
		return fmt.Errorf("missing required flags: user")
	}
	if *days < 1 {
		return fmt.Errorf("days must be positive")
	}

	if url := os.Getenv("DATABASE_URL"); url != "" && *databaseURL == defaultDatabaseURL {
		*databaseURL = url
	}

	ctx := context.Background()
	repo, err := db.Open(ctx, *databaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer repo.Close()

	user, err := repo.FindByUsername(ctx, *username)
	if err != nil {
		return fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return fmt.Errorf("user %s not found", *username)
	}

	g := newGenerator(*seed, time.Now(), *days)
	for range *incomes {
		if _, err := repo.AppendIncome(ctx, user.Username, g.income()); err != nil {
			return fmt.Errorf("failed to add income: %w", err)
		}
	}
	for range *expenses {
		if _, err := repo.AppendExpense(ctx, user.Username, g.expense()); err != nil {
			return fmt.Errorf("failed to add expense: %w", err)
		}
	}

	fmt.Fprintf(stdout, "Added %d incomes and %d expenses for %s\n", *incomes, *expenses, user.Username)
	return nil
}

// generator produces entries dated within the last days before now.
type generator struct {
	faker *gofakeit.Faker
	from  time.Time
	to    time.Time
}

func newGenerator(seed int64, now time.Time, days int) *generator {
	to := models.StartOfDay(now)
	return &generator{
		faker: gofakeit.New(seed),
		from:  to.AddDate(0, 0, -(days - 1)),
		to:    to,
	}
}

func (g *generator) date() time.Time {
	return g.faker.DateRange(g.from, g.to.Add(24*time.Hour-time.Nanosecond))
}

func (g *generator) amount(lo, hi float64) float64 {
	return math.Round(g.faker.Price(lo, hi)*100) / 100
}

func (g *generator) income() models.Income {
	return models.NewIncome(g.amount(50, 3000), g.faker.RandomString(incomeSources), g.faker.Emoji(), g.date())
}

func (g *generator) expense() models.Expense {
	sub := models.Subcategories[g.faker.Number(0, len(models.Subcategories)-1)]
	return models.NewExpense(g.amount(1, 500), g.faker.Noun(), sub, g.faker.Emoji(), g.date())
}
