package blob

import (
	"context"
	"database/sql"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/smartsyakila/backend/core"
)

// PGStore keeps each collection document as one jsonb row in the
// documents table.
type PGStore struct {
	db *sqlx.DB
}

var _ Store = (*PGStore)(nil)

// OpenPG connects to the configured postgres database and waits for it
// to become ready.
func OpenPG() (*PGStore, error) {
	db, err := sqlx.Open(core.Conf.GetString("database.engine"), DatabaseURL())
	if err != nil {
		return nil, errors.Wrap(err, "opening DB")
	}
	if err := ping(db); err != nil {
		return nil, err
	}
	return &PGStore{db: db}, nil
}

// DatabaseURL builds the connection URL from config.
func DatabaseURL() string {
	sslMode := "require"
	if core.Conf.GetBool("database.disableTLS") {
		sslMode = "disable"
	}
	q := make(url.Values)
	q.Set("sslmode", sslMode)
	q.Set("timezone", "utc")

	u := url.URL{
		Scheme:   core.Conf.GetString("database.engine"),
		User:     url.UserPassword(core.Conf.GetString("database.user"), core.Conf.GetString("database.password")),
		Host:     core.Conf.GetString("database.host") + ":" + core.Conf.GetString("database.port"),
		Path:     core.Conf.GetString("database.name"),
		RawQuery: q.Encode(),
	}
	return u.String()
}

// ping waits for the database to be ready. Waits 100ms longer between each attempt.
func ping(db *sqlx.DB) error {
	var err error
	maxAttempts := 30
	for attempts := 1; attempts <= maxAttempts; attempts++ {
		err = db.Ping()
		if err == nil {
			break
		}
		time.Sleep(time.Duration(attempts) * 100 * time.Millisecond)
	}
	if err != nil {
		return errors.Wrap(err, "DB ping timeout")
	}
	return nil
}

func (s *PGStore) Close() error {
	return s.db.Close()
}

// DB exposes the underlying handle for migrations.
func (s *PGStore) DB() *sql.DB {
	return s.db.DB
}

func (s *PGStore) Get(ctx context.Context, key string) ([]byte, error) {
	var doc []byte
	err := s.db.GetContext(ctx, &doc, "SELECT doc FROM documents WHERE key = $1", key)
	if err == sql.ErrNoRows {
		return nil, ErrAbsent
	}
	if err != nil {
		return nil, errors.Wrapf(err, "fetching document %s", key)
	}
	return doc, nil
}

func (s *PGStore) Put(ctx context.Context, key string, doc []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO documents (key, doc) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()`,
		key, doc,
	)
	if err != nil {
		return errors.Wrapf(err, "storing document %s", key)
	}
	return nil
}
