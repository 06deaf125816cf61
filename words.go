package cryptics

import (
	"context"
	"fmt"

	"cloud.google.com/go/bigquery"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"

	"crosswarped.com/cryptics/pkg/wordlist"
)

type synonymRow struct {
	Word    string              `bigquery:"word"`
	Synonym bigquery.NullString `bigquery:"synonym"`
}

// rowIterator is the part of bigquery.RowIterator used to read rows.
type rowIterator interface {
	Next(dst interface{}) error
}

func synonymsQuery(project, dataset, table string) string {
	return fmt.Sprintf("SELECT word, synonym FROM `%s.%s.%s`", project, dataset, table)
}

// LoadWordsFromCloud reads the synonym list from a BigQuery table with word and
// synonym columns.
func LoadWordsFromCloud(ctx context.Context, project, dataset, table string) (*wordlist.List, error) {
	client, err := bigquery.NewClient(ctx, project)
	if err != nil {
		return nil, eris.Wrap(err, "bigquery: new client")
	}
	defer client.Close()

	it, err := client.Query(synonymsQuery(project, dataset, table)).Read(ctx)
	if err != nil {
		return nil, eris.Wrap(err, "bigquery: query synonyms")
	}
	list, err := readSynonyms(it)
	if err != nil {
		return nil, err
	}
	zap.L().Info("bigquery: loaded word list",
		zap.String("table", fmt.Sprintf("%s.%s.%s", project, dataset, table)),
		zap.Int("words", list.Len()),
	)
	return list, nil
}

func readSynonyms(it rowIterator) (*wordlist.List, error) {
	b := wordlist.NewBuilder()
	for {
		var row synonymRow
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, eris.Wrap(err, "bigquery: read row")
		}
		if row.Synonym.Valid {
			b.Add(row.Word, row.Synonym.StringVal)
		} else {
			b.Add(row.Word)
		}
	}
	return b.Build(), nil
}
