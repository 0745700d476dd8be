package account

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/snowflakedb/gosnowflake"

	"deckdrop/pkg/errors"
)

const (
	accountColumns = "ACCOUNT_ID, ACCOUNT_NAME, ACCOUNT_TYPE, INDUSTRY, REVENUE, EMPLOYEES, CREATED_DATE"

	fetchQuery = "SELECT " + accountColumns + " FROM ACCOUNTS WHERE ACCOUNT_ID = ?"
	listQuery  = "SELECT " + accountColumns + " FROM ACCOUNTS ORDER BY ACCOUNT_NAME"
)

// Service reads account records from Snowflake
type Service struct {
	db        *sql.DB
	config    Config
	connected bool
}

// Config holds Snowflake connection configuration
type Config struct {
	Account   string
	Username  string
	Password  string
	Database  string
	Schema    string
	Warehouse string
	Role      string
	Timeout   time.Duration
}

// NewService creates a new Snowflake-backed account store
func NewService(config Config) *Service {
	return &Service{
		config: config,
	}
}

// Connect establishes a connection to Snowflake
func (s *Service) Connect() error {
	if s.connected {
		return nil
	}

	dsn := fmt.Sprintf("%s:%s@%s/%s/%s?warehouse=%s&role=%s",
		s.config.Username,
		s.config.Password,
		s.config.Account,
		s.config.Database,
		s.config.Schema,
		s.config.Warehouse,
		s.config.Role,
	)

	db, err := sql.Open("snowflake", dsn)
	if err != nil {
		return errors.ConnectionError("Failed to open Snowflake connection", err).
			WithContext("account", s.config.Account).
			WithContext("warehouse", s.config.Warehouse)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(10 * time.Minute)

	// Test the connection
	connCtx, cancel := s.withTimeout(context.Background())
	defer cancel()

	if err := db.PingContext(connCtx); err != nil {
		db.Close()

		// Check for specific error types
		if strings.Contains(err.Error(), "authentication") {
			return errors.New(errors.ErrCodeAuthenticationFailed, "Authentication failed").
				WithContext("user", s.config.Username).
				WithSuggestions(
					"Verify your username and password",
					"Check if your account is locked",
					"Ensure MFA is properly configured if required",
				)
		}

		return errors.ConnectionError("Failed to connect to Snowflake", err).
			WithContext("account", s.config.Account)
	}

	s.db = db
	s.connected = true
	return nil
}

// Close closes the database connection
func (s *Service) Close() error {
	if !s.connected {
		return nil
	}

	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close connection: %w", err)
	}

	s.connected = false
	return nil
}

// Fetch returns the account row matching the given ACCOUNT_ID.
func (s *Service) Fetch(ctx context.Context, id string) (*Record, error) {
	if !s.connected {
		return nil, errors.New(errors.ErrCodeConnectionFailed, "Not connected to database").
			WithSuggestions("Call Connect() before fetching accounts")
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var rec Record
	err := s.db.QueryRowContext(ctx, fetchQuery, id).Scan(
		&rec.ID,
		&rec.Name,
		&rec.Type,
		&rec.Industry,
		&rec.Revenue,
		&rec.Employees,
		&rec.CreatedDate,
	)
	if err == sql.ErrNoRows {
		return nil, errors.New(errors.ErrCodeAccountNotFound, fmt.Sprintf("Account %s not found", id)).
			WithContext("account_id", id).
			WithSuggestions(
				"Run 'deckdrop accounts' to list available account IDs",
				"Check the account ID for typos",
			)
	}
	if err != nil {
		return nil, errors.QueryError(fmt.Sprintf("Failed to fetch account %s", id), fetchQuery, err).
			WithContext("account_id", id)
	}

	return &rec, nil
}

// List returns all accounts ordered by account name.
func (s *Service) List(ctx context.Context) ([]Record, error) {
	if !s.connected {
		return nil, errors.New(errors.ErrCodeConnectionFailed, "Not connected to database").
			WithSuggestions("Call Connect() before listing accounts")
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, listQuery)
	if err != nil {
		return nil, errors.QueryError("Failed to list accounts", listQuery, err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(
			&rec.ID,
			&rec.Name,
			&rec.Type,
			&rec.Industry,
			&rec.Revenue,
			&rec.Employees,
			&rec.CreatedDate,
		); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeResultParsing, "Failed to scan account row")
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.QueryError("Failed to read account rows", listQuery, err)
	}

	return records, nil
}

// TestConnection tests the database connection
func (s *Service) TestConnection() error {
	if !s.connected {
		if err := s.Connect(); err != nil {
			return err
		}
	}

	ctx, cancel := s.withTimeout(context.Background())
	defer cancel()

	return s.db.PingContext(ctx)
}

// Helper methods

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := s.config.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return context.WithTimeout(ctx, timeout)
}

// ValidateConfig validates the Snowflake configuration
func ValidateConfig(config Config) error {
	if config.Account == "" {
		return fmt.Errorf("account is required")
	}
	if config.Username == "" {
		return fmt.Errorf("username is required")
	}
	if config.Password == "" {
		return fmt.Errorf("password is required")
	}
	if config.Database == "" {
		return fmt.Errorf("database is required")
	}
	if config.Schema == "" {
		return fmt.Errorf("schema is required")
	}
	if config.Warehouse == "" {
		return fmt.Errorf("warehouse is required")
	}
	if config.Role == "" {
		return fmt.Errorf("role is required")
	}
	return nil
}
