/*
Package pgadapter provides an implementation of the Adapter interface in
the sqlsource package that works over a PostgreSQL database.
*/
package pgadapter

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/subgroups/dssd/dataset/sqlsource"

	// Import of PostgreSQL driver
	_ "github.com/lib/pq"
)

// MaxSampleInsertionsPerStatement is the maximum number of samples that
// are allowed to be added with a single insert command with the
// AddSamples method of the adapter. Trying to add more will result in
// making more insertion commands.
const MaxSampleInsertionsPerStatement = 100

type adapter struct {
	db *sql.DB
}

/*
New takes a PostgreSQL database connection URL and returns an Adapter
that works on the database or an error if it fails to connect to it.
*/
func New(url string) (sqlsource.Adapter, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, err
	}
	return &adapter{db}, nil
}

func (a *adapter) ColumnName(attributeName string) (string, error) {
	if attributeName == "id" {
		return "", fmt.Errorf(`'%s' is reserved and cannot be used as attribute name`, attributeName)
	}
	if strings.ContainsAny(attributeName, `"`) {
		return "", fmt.Errorf(`attribute name '%s' contains invalid character '"'`, attributeName)
	}
	return attributeName, nil
}

func (a *adapter) CreateSamplesTable(ctx context.Context, columns []string) error {
	var createStmtBuf bytes.Buffer
	createStmtBuf.WriteString("CREATE TABLE IF NOT EXISTS samples(id SERIAL PRIMARY KEY")
	for _, c := range columns {
		fmt.Fprintf(&createStmtBuf, `, "%s" BOOLEAN NOT NULL`, c)
	}
	createStmtBuf.WriteString(")")
	createStmt, err := a.db.PrepareContext(ctx, createStmtBuf.String())
	if err != nil {
		return fmt.Errorf("preparing samples creation statement: %v", err)
	}
	defer createStmt.Close()
	_, err = createStmt.ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("running samples creation statement: %v", err)
	}
	return nil
}

func (a *adapter) AddSamples(ctx context.Context, columns []string, rows [][]bool) (int, error) {
	added := 0
	for len(rows) > 0 {
		batch := rows
		if len(batch) > MaxSampleInsertionsPerStatement {
			batch = batch[:MaxSampleInsertionsPerStatement]
		}
		rows = rows[len(batch):]
		var insertStmtBuf bytes.Buffer
		insertStmtBuf.WriteString(`INSERT INTO samples("`)
		insertStmtBuf.WriteString(strings.Join(columns, `", "`))
		insertStmtBuf.WriteString(`") VALUES `)
		args := make([]interface{}, 0, len(batch)*len(columns))
		for i, row := range batch {
			if i > 0 {
				insertStmtBuf.WriteString(", ")
			}
			insertStmtBuf.WriteString("(")
			for j, v := range row {
				if j > 0 {
					insertStmtBuf.WriteString(", ")
				}
				fmt.Fprintf(&insertStmtBuf, "$%d", len(args)+1)
				args = append(args, v)
			}
			insertStmtBuf.WriteString(")")
		}
		result, err := a.db.ExecContext(ctx, insertStmtBuf.String(), args...)
		if err != nil {
			return added, fmt.Errorf("inserting samples: %v", err)
		}
		n, err := result.RowsAffected()
		if err != nil {
			return added, fmt.Errorf("counting inserted samples: %v", err)
		}
		added += int(n)
	}
	return added, nil
}

func (a *adapter) IterateOnSamples(ctx context.Context, columns []string, lambda func(int, []bool) (bool, error)) error {
	query := fmt.Sprintf(`SELECT "%s" FROM samples ORDER BY id`, strings.Join(columns, `", "`))
	rows, err := a.db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("querying samples: %v", err)
	}
	defer rows.Close()
	values := make([]bool, len(columns))
	scanTargets := make([]interface{}, len(columns))
	for j := range values {
		scanTargets[j] = &values[j]
	}
	for i := 0; rows.Next(); i++ {
		if err := rows.Scan(scanTargets...); err != nil {
			return fmt.Errorf("scanning sample %d: %v", i, err)
		}
		row := make([]bool, len(values))
		copy(row, values)
		ok, err := lambda(i, row)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating on samples: %v", err)
	}
	return nil
}
