package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

// OpenFunc establishes and verifies a database handle.
type OpenFunc func(ctx context.Context) (*sql.DB, error)

// Open returns an OpenFunc that opens a lib/pq connection for dsn and pings it.
func Open(dsn string) OpenFunc {
	return func(ctx context.Context) (*sql.DB, error) {
		db, err := sql.Open("postgres", dsn)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("ping postgres: %w", err)
		}
		return db, nil
	}
}

// attempt is one in-flight connection establishment. Waiters block on done
// and then read db/err, so a late waiter never observes a newer attempt's
// result.
type attempt struct {
	done chan struct{}
	db   *sql.DB
	err  error
}

// Connector owns the single shared database handle. The handle is established
// lazily on first use; concurrent callers during establishment await the same
// in-flight attempt instead of opening redundant connections. A failed attempt
// is discarded, so the next call retries cleanly.
type Connector struct {
	open OpenFunc

	mu       sync.Mutex
	db       *sql.DB
	inflight *attempt
}

// NewConnector returns a Connector that will use open on first demand.
func NewConnector(open OpenFunc) *Connector {
	return &Connector{open: open}
}

// NewConnectorFromDB returns a Connector already holding db. Used by tests and
// by callers that manage the handle themselves.
func NewConnectorFromDB(db *sql.DB) *Connector {
	return &Connector{db: db}
}

// DB returns the shared handle, establishing it if necessary. ctx bounds only
// this caller's wait; the establishment itself is shared and runs to
// completion for the benefit of other waiters.
func (c *Connector) DB(ctx context.Context) (*sql.DB, error) {
	c.mu.Lock()
	if c.db != nil {
		db := c.db
		c.mu.Unlock()
		return db, nil
	}
	if c.inflight == nil {
		att := &attempt{done: make(chan struct{})}
		c.inflight = att
		go c.connect(att)
	}
	att := c.inflight
	c.mu.Unlock()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-att.done:
	}
	return att.db, att.err
}

func (c *Connector) connect(att *attempt) {
	db, err := c.open(context.Background())
	c.mu.Lock()
	if err == nil {
		c.db = db
	}
	c.inflight = nil
	c.mu.Unlock()
	att.db, att.err = db, err
	close(att.done)
}

// Close releases the shared handle if one was established.
func (c *Connector) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	return err
}
