package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/friendsofgo/errors"
	_ "github.com/lib/pq"

	"gatherup-api/config"
)

const (
	connectTimeout  = 5 * time.Second
	maxIdleConns    = 25
	maxOpenConns    = 100
	connMaxLifetime = 30 * time.Minute
	connMaxIdleTime = 5 * time.Minute
)

var (
	instance *sql.DB
	mu       sync.RWMutex
)

// Connect opens the PostgreSQL connection pool and verifies it with a
// ping. Repeated calls return the existing pool.
func Connect(ctx context.Context, cfg config.PostgresConfig) (*sql.DB, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open postgres connection")
	}

	db.SetMaxIdleConns(maxIdleConns)
	db.SetMaxOpenConns(maxOpenConns)
	db.SetConnMaxLifetime(connMaxLifetime)
	db.SetConnMaxIdleTime(connMaxIdleTime)

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "ping postgres")
	}

	instance = db
	return instance, nil
}

// Disconnect closes the pool and allows a later Connect to rebuild it.
func Disconnect(ctx context.Context, db *sql.DB) error {
	mu.Lock()
	defer mu.Unlock()

	if db == nil {
		return nil
	}
	if err := db.Close(); err != nil {
		return errors.Wrap(err, "close postgres connection")
	}
	instance = nil
	return nil
}

// HealthCheck pings the database through the current pool.
func HealthCheck(ctx context.Context) error {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		return errors.New("postgres client not initialized")
	}
	return instance.PingContext(ctx)
}
