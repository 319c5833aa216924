package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/carson-networks/expense-tracker/internal/analytics"
	"github.com/carson-networks/expense-tracker/internal/client"
	"github.com/carson-networks/expense-tracker/internal/filter"
	"github.com/carson-networks/expense-tracker/internal/model"
	"github.com/carson-networks/expense-tracker/internal/preferences"
)

var errNotLoggedIn = errors.New("not logged in, run expensectl login first")

type session struct {
	client    *client.Client
	prefsPath string
	prefs     preferences.Preferences
	logger    *logrus.Logger
}

func (s *session) userID() (string, error) {
	if s.prefs.UserID == "" {
		return "", errNotLoggedIn
	}
	return s.prefs.UserID, nil
}

func (s *session) save() error {
	return preferences.Save(s.prefsPath, s.prefs)
}

func newApp(logger *logrus.Logger) *cli.App {
	s := &session{logger: logger}

	return &cli.App{
		Name:  "expensectl",
		Usage: "record and review income and expenses",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "server",
				Usage:   "expense tracker API base URL",
				Value:   "http://localhost:8080",
				EnvVars: []string{"EXPENSE_TRACKER_URL"},
			},
			&cli.StringFlag{
				Name:  "preferences",
				Usage: "preferences file, defaults to the user config directory",
			},
		},
		Before: func(c *cli.Context) error {
			path := c.String("preferences")
			if path == "" {
				var err error
				if path, err = preferences.DefaultPath(); err != nil {
					return err
				}
			}
			prefs, err := preferences.Load(path)
			if err != nil {
				return err
			}
			s.prefsPath = path
			s.prefs = prefs
			s.client = client.New(c.String("server"), nil)
			return nil
		},
		Commands: []*cli.Command{
			registerCommand(s),
			loginCommand(s),
			filterCommand(s),
			listCommand(s),
			analyticsCommand(s),
			addCommand(s),
			editCommand(s),
			deleteCommand(s),
		},
	}
}

func registerCommand(s *session) *cli.Command {
	return &cli.Command{
		Name:  "register",
		Usage: "create an account",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Required: true},
			&cli.StringFlag{Name: "email", Required: true},
			&cli.StringFlag{Name: "password", Required: true, EnvVars: []string{"EXPENSE_TRACKER_PASSWORD"}},
		},
		Action: func(c *cli.Context) error {
			id, err := s.client.Register(c.Context, c.String("name"), c.String("email"), c.String("password"))
			if err != nil {
				return err
			}
			s.prefs.UserID = id
			if err := s.save(); err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "registered %s\n", id)
			return nil
		},
	}
}

func loginCommand(s *session) *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "log in and remember the user for later commands",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email", Required: true},
			&cli.StringFlag{Name: "password", Required: true, EnvVars: []string{"EXPENSE_TRACKER_PASSWORD"}},
		},
		Action: func(c *cli.Context) error {
			u, err := s.client.Login(c.Context, c.String("email"), c.String("password"))
			if err != nil {
				return err
			}
			s.prefs.UserID = u.ID
			if err := s.save(); err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "logged in as %s\n", u.Name)
			return nil
		},
	}
}

func filterCommand(s *session) *cli.Command {
	return &cli.Command{
		Name:  "filter",
		Usage: "show or change the saved filter",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "frequency", Usage: "7, 30, 365 or custom"},
			&cli.StringFlag{Name: "from", Usage: "start date for a custom range, YYYY-MM-DD"},
			&cli.StringFlag{Name: "to", Usage: "end date for a custom range, YYYY-MM-DD"},
			&cli.StringFlag{Name: "type", Usage: "all, income or expense"},
		},
		Action: func(c *cli.Context) error {
			if c.IsSet("frequency") {
				s.prefs.Frequency = filter.Frequency(c.String("frequency"))
			}
			if c.IsSet("type") {
				s.prefs.Type = filter.TypeFilter(c.String("type"))
			}
			if s.prefs.Frequency == filter.FrequencyCustom {
				if c.IsSet("from") || c.IsSet("to") {
					s.prefs.DateRange = []string{c.String("from"), c.String("to")}
				}
			} else {
				s.prefs.DateRange = nil
			}

			if c.NumFlags() > 0 {
				if err := s.save(); err != nil {
					return err
				}
			}
			printFilter(c.App.Writer, s.prefs)
			return nil
		},
	}
}

func listCommand(s *session) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "list transactions matching the saved filter, newest first",
		Action: func(c *cli.Context) error {
			userID, err := s.userID()
			if err != nil {
				return err
			}
			txs, err := s.client.Query(c.Context, userID, s.prefs.Filter())
			if err != nil {
				return err
			}
			return printTransactions(c.App.Writer, txs)
		},
	}
}

func analyticsCommand(s *session) *cli.Command {
	return &cli.Command{
		Name:  "analytics",
		Usage: "summarize transactions matching the saved filter",
		Action: func(c *cli.Context) error {
			userID, err := s.userID()
			if err != nil {
				return err
			}
			summary, err := fetchSummary(c.Context, s.client, userID, s.prefs.Filter(), s.logger)
			if err != nil {
				return err
			}
			return printSummary(c.App.Writer, summary)
		},
	}
}

type summarySource interface {
	Analytics(ctx context.Context, userID string, f filter.Filter) (analytics.Summary, error)
	Query(ctx context.Context, userID string, f filter.Filter) ([]model.Transaction, error)
}

// fetchSummary asks the server for the summary. Servers without the
// analytics endpoint answer 404; the summary is then computed from the
// queried transactions.
func fetchSummary(ctx context.Context, src summarySource, userID string, f filter.Filter, logger *logrus.Logger) (analytics.Summary, error) {
	summary, err := src.Analytics(ctx, userID, f)
	var apiErr *client.APIError
	if err == nil || !errors.As(err, &apiErr) || apiErr.Status != http.StatusNotFound {
		return summary, err
	}

	logger.Debug("analytics endpoint unavailable, summarizing locally")
	txs, err := src.Query(ctx, userID, f)
	if err != nil {
		return analytics.Summary{}, err
	}
	return analytics.Summarize(txs), nil
}

func transactionFlags(required bool) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "amount", Required: required},
		&cli.StringFlag{Name: "type", Required: required, Usage: "income or expense"},
		&cli.StringFlag{Name: "category", Required: required},
		&cli.StringFlag{Name: "description", Required: required},
		&cli.StringFlag{Name: "date", Usage: "YYYY-MM-DD, defaults to today"},
	}
}

// applyFlags overwrites the fields of edit whose flags were given.
func applyFlags(c *cli.Context, edit *model.TransactionEdit) error {
	if c.IsSet("amount") {
		amount, err := decimal.NewFromString(c.String("amount"))
		if err != nil {
			return fmt.Errorf("invalid amount: %w", err)
		}
		edit.Amount = amount
	}
	if c.IsSet("type") {
		txType, err := model.ParseTransactionType(c.String("type"))
		if err != nil {
			return err
		}
		edit.Type = txType
	}
	if c.IsSet("category") {
		category, err := model.ParseCategory(c.String("category"))
		if err != nil {
			return err
		}
		edit.Category = category
	}
	if c.IsSet("description") {
		edit.Description = c.String("description")
	}
	if c.IsSet("date") {
		date, err := model.ParseDate(c.String("date"))
		if err != nil {
			return fmt.Errorf("invalid date: %w", err)
		}
		edit.Date = date
	}
	return nil
}

func addCommand(s *session) *cli.Command {
	return &cli.Command{
		Name:  "add",
		Usage: "record a transaction",
		Flags: transactionFlags(true),
		Action: func(c *cli.Context) error {
			userID, err := s.userID()
			if err != nil {
				return err
			}

			edit := model.TransactionEdit{Date: model.TruncateDate(time.Now())}
			if err := applyFlags(c, &edit); err != nil {
				return err
			}

			id, err := s.client.Add(c.Context, model.Transaction{
				UserID:      uuid.FromStringOrNil(userID),
				Amount:      edit.Amount,
				Type:        edit.Type,
				Category:    edit.Category,
				Description: edit.Description,
				Date:        edit.Date,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "added %s\n", id)
			return nil
		},
	}
}

func editCommand(s *session) *cli.Command {
	return &cli.Command{
		Name:  "edit",
		Usage: "change a transaction; fields without a flag keep their value",
		Flags: append([]cli.Flag{&cli.StringFlag{Name: "id", Required: true}}, transactionFlags(false)...),
		Action: func(c *cli.Context) error {
			userID, err := s.userID()
			if err != nil {
				return err
			}

			current, err := s.client.Get(c.Context, c.String("id"), userID)
			if err != nil {
				return err
			}
			edit := current.Edit()
			if err := applyFlags(c, &edit); err != nil {
				return err
			}

			if _, err := s.client.Edit(c.Context, c.String("id"), userID, edit); err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "updated %s\n", c.String("id"))
			return nil
		},
	}
}

func deleteCommand(s *session) *cli.Command {
	return &cli.Command{
		Name:  "delete",
		Usage: "delete a transaction",
		Flags: []cli.Flag{&cli.StringFlag{Name: "id", Required: true}},
		Action: func(c *cli.Context) error {
			userID, err := s.userID()
			if err != nil {
				return err
			}

			rows, err := s.client.Delete(c.Context, c.String("id"), userID)
			if err != nil {
				return err
			}
			if rows == 0 {
				s.logger.WithField("transactionId", c.String("id")).Warn("delete matched no transaction")
			}
			fmt.Fprintf(c.App.Writer, "deleted %s\n", c.String("id"))
			return nil
		},
	}
}
