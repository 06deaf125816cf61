package wordlist

import (
	"context"
	"database/sql"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"
)

// SynonymsQuery reads a list from SQL stores. A NULL synonym lists the word alone.
const SynonymsQuery = `SELECT word, synonym FROM synonyms`

// LoadSQLite reads a list from the synonyms table of the SQLite database at dsn.
func LoadSQLite(ctx context.Context, dsn string) (*List, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "wordlist: sqlite open")
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, SynonymsQuery)
	if err != nil {
		return nil, eris.Wrap(err, "wordlist: sqlite query")
	}
	defer rows.Close()

	b := NewBuilder()
	for rows.Next() {
		var word string
		var synonym sql.NullString
		if err := rows.Scan(&word, &synonym); err != nil {
			return nil, eris.Wrap(err, "wordlist: sqlite scan")
		}
		if synonym.Valid {
			b.Add(word, synonym.String)
		} else {
			b.Add(word)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "wordlist: sqlite rows")
	}
	return b.Build(), nil
}
