package store

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/imageshare/imageshare-server/internal/model"
)

// Kind tags a supported store backend.
type Kind string

const (
	KindPostgres Kind = "postgres"
	KindSQLite   Kind = "sqlite"
)

// Params carries connection parameters for a store backend. Only the
// fields belonging to the selected Kind are validated.
type Params struct {
	Kind Kind

	// postgres
	Host     string
	Username string
	Password string
	DBName   string
	SSLMode  string

	// sqlite
	Path   string
	Memory bool

	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

type dialectorFunc func(Params) (gorm.Dialector, error)

// dialectors maps a kind tag to its dialector constructor.
var dialectors = map[Kind]dialectorFunc{
	KindPostgres: postgresDialector,
	KindSQLite:   sqliteDialector,
}

// postgresDialector validates postgres parameters, builds a DSN and opens
// the connection through the pgx stdlib driver.
func postgresDialector(p Params) (gorm.Dialector, error) {
	for _, req := range []struct{ name, value string }{
		{"host", p.Host},
		{"username", p.Username},
		{"password", p.Password},
		{"dbname", p.DBName},
	} {
		if req.value == "" {
			return nil, fmt.Errorf("%w: postgres store requires %s", model.ErrValidation, req.name)
		}
	}

	sslMode := p.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	dsn := fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		url.QueryEscape(p.Username), url.QueryEscape(p.Password), p.Host, p.DBName, sslMode)

	conf, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid postgres parameters: %v", model.ErrValidation, err)
	}

	return postgres.New(postgres.Config{Conn: stdlib.OpenDB(*conf)}), nil
}

// sqliteDialector validates sqlite parameters. Memory takes precedence
// over Path, matching the local-development default.
func sqliteDialector(p Params) (gorm.Dialector, error) {
	if p.Memory {
		// Shared cache so every pooled connection sees the same database.
		return sqlite.Open("file::memory:?cache=shared"), nil
	}
	if p.Path == "" {
		return nil, fmt.Errorf("%w: sqlite store requires a path or the memory flag", model.ErrValidation)
	}
	return sqlite.Open(p.Path), nil
}

// schemaModels is the full set of persisted tables.
var schemaModels = []any{
	&model.User{},
	&model.Post{},
	&model.Follow{},
	&model.Like{},
	&model.AgeOfMajority{},
}

// Connection wraps a gorm handle for the selected store kind.
type Connection struct {
	db *gorm.DB
}

// NewConnection validates the parameters for the given kind, opens the
// connection and configures the pool.
func NewConnection(ctx context.Context, p Params) (*Connection, error) {
	constructor, ok := dialectors[p.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported store kind %q", model.ErrValidation, p.Kind)
	}

	dialector, err := constructor(p)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open store: %v", model.ErrStore, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get underlying pool: %v", model.ErrStore, err)
	}

	if p.Kind == KindSQLite && p.Memory {
		// A wider pool would hand out connections to private in-memory
		// databases once the shared cache is dropped.
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetMaxOpenConns(1)
	} else {
		if p.MaxIdleConns > 0 {
			sqlDB.SetMaxIdleConns(p.MaxIdleConns)
		}
		if p.MaxOpenConns > 0 {
			sqlDB.SetMaxOpenConns(p.MaxOpenConns)
		}
		if p.ConnMaxLifetime > 0 {
			sqlDB.SetConnMaxLifetime(p.ConnMaxLifetime)
		}
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("%w: failed to ping store: %v", model.ErrStore, err)
	}

	return &Connection{db: db}, nil
}

// DB exposes the underlying gorm handle to the repositories.
func (c *Connection) DB() *gorm.DB {
	return c.db
}

// Ping verifies the store is reachable.
func (c *Connection) Ping(ctx context.Context) error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrStore, err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", model.ErrStore, err)
	}
	return nil
}

// Close releases the connection pool.
func (c *Connection) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrStore, err)
	}
	return sqlDB.Close()
}

// HasSchema reports whether every expected table already exists.
func (c *Connection) HasSchema(ctx context.Context) bool {
	migrator := c.db.WithContext(ctx).Migrator()
	for _, m := range schemaModels {
		if !migrator.HasTable(m) {
			return false
		}
	}
	return true
}

// CreateSchema creates all tables and seeds the age-of-majority reference
// rows. It is idempotent.
func (c *Connection) CreateSchema(ctx context.Context) error {
	if err := c.db.WithContext(ctx).AutoMigrate(schemaModels...); err != nil {
		return fmt.Errorf("%w: failed to create schema: %v", model.ErrStore, err)
	}
	return c.seedAgeOfMajority(ctx)
}

func (c *Connection) seedAgeOfMajority(ctx context.Context) error {
	var count int64
	if err := c.db.WithContext(ctx).Model(&model.AgeOfMajority{}).Count(&count).Error; err != nil {
		return fmt.Errorf("%w: %v", model.ErrStore, err)
	}
	if count > 0 {
		return nil
	}

	rows := []model.AgeOfMajority{
		{Country: "United Kingdom", Age: 18},
		{Country: "United States", Age: 18},
		{Country: "Germany", Age: 18},
		{Country: "Japan", Age: 18},
		{Country: "Canada", Age: 19},
	}
	if err := c.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return fmt.Errorf("%w: failed to seed reference data: %v", model.ErrStore, err)
	}
	return nil
}

// Populate seeds local-development fixtures: two users and one follow.
func (c *Connection) Populate(ctx context.Context) error {
	return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		users := []model.User{
			{
				Username:     "some_user",
				PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
				FirstName:    "First",
				LastName:     "Last",
				City:         "Hackerville",
				Country:      "Someplace",
			},
			{
				Username:     "some_user2",
				PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
				FirstName:    "Alpha",
				LastName:     "Omega",
				City:         "Guido City",
				Country:      "Pythonland",
			},
		}
		if err := tx.Create(&users).Error; err != nil {
			return wrapError(err)
		}

		follow := model.Follow{Follower: users[0].ID, Follows: users[1].ID, IsActive: true}
		if err := tx.Create(&follow).Error; err != nil {
			return wrapError(err)
		}
		return nil
	})
}
