package wordlist

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"
)

// Querier is the subset of pgxpool.Pool used to read a list.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// ConnectPostgres opens a pool for databaseURL.
func ConnectPostgres(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, eris.Wrap(err, "wordlist: postgres connect")
	}
	return pool, nil
}

// LoadPostgres reads a list from the synonyms table through q.
func LoadPostgres(ctx context.Context, q Querier) (*List, error) {
	rows, err := q.Query(ctx, SynonymsQuery)
	if err != nil {
		return nil, eris.Wrap(err, "wordlist: postgres query")
	}
	defer rows.Close()

	b := NewBuilder()
	for rows.Next() {
		var word string
		var synonym *string
		if err := rows.Scan(&word, &synonym); err != nil {
			return nil, eris.Wrap(err, "wordlist: postgres scan")
		}
		if synonym != nil {
			b.Add(word, *synonym)
		} else {
			b.Add(word)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "wordlist: postgres rows")
	}
	return b.Build(), nil
}
