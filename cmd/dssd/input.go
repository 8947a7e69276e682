package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/subgroups/dssd/dataset"
	"github.com/subgroups/dssd/dataset/csv"
	"github.com/subgroups/dssd/dataset/mongosource"
	"github.com/subgroups/dssd/dataset/sqlsource"
	"github.com/subgroups/dssd/dataset/sqlsource/pgadapter"
	"github.com/subgroups/dssd/dataset/sqlsource/sqlite3adapter"
	mgo "gopkg.in/mgo.v2"
)

/*
readTable loads a dataset.Table with the given attributes from the input
reference: a path to a CSV (.csv) or SQLite3 (.db) file, a PostgreSQL or
MongoDB connection URL, or the empty string for STDIN interpreted as CSV.
*/
func readTable(ctx context.Context, input string, attributes []string, log logger) (*dataset.Table, error) {
	switch {
	case input == "":
		log.Logf("Reading dataset from STDIN...")
		return csv.ReadTable(os.Stdin, attributes)
	case strings.HasPrefix(input, "postgresql://"):
		log.Logf("Reading dataset from PostgreSQL at %s...", input)
		adapter, err := pgadapter.New(input)
		if err != nil {
			return nil, fmt.Errorf("connecting to PostgreSQL: %v", err)
		}
		return sqlsource.ReadTable(ctx, adapter, attributes)
	case strings.HasPrefix(input, "mongodb://"):
		log.Logf("Reading dataset from MongoDB at %s...", input)
		session, err := mgo.Dial(input)
		if err != nil {
			return nil, fmt.Errorf("connecting to MongoDB: %v", err)
		}
		defer session.Close()
		return mongosource.ReadTable(ctx, session, attributes)
	case strings.HasSuffix(input, ".db"):
		log.Logf("Reading dataset from SQLite3 file %s...", input)
		adapter, err := sqlite3adapter.New(input)
		if err != nil {
			return nil, fmt.Errorf("opening SQLite3 file %s: %v", input, err)
		}
		return sqlsource.ReadTable(ctx, adapter, attributes)
	default:
		log.Logf("Reading dataset from CSV file %s...", input)
		return csv.ReadTableFromFilePath(input, attributes)
	}
}

/*
writeTable dumps a dataset.Table to the output reference, using the same
conventions as readTable; the empty string dumps CSV to STDOUT.
*/
func writeTable(ctx context.Context, output string, t *dataset.Table, log logger) error {
	switch {
	case output == "":
		log.Logf("Using STDOUT to dump output dataset...")
		return csv.WriteTable(os.Stdout, t)
	case strings.HasPrefix(output, "postgresql://"):
		log.Logf("Dumping dataset to PostgreSQL at %s...", output)
		adapter, err := pgadapter.New(output)
		if err != nil {
			return fmt.Errorf("connecting to PostgreSQL: %v", err)
		}
		_, err = sqlsource.WriteTable(ctx, adapter, t)
		return err
	case strings.HasPrefix(output, "mongodb://"):
		log.Logf("Dumping dataset to MongoDB at %s...", output)
		session, err := mgo.Dial(output)
		if err != nil {
			return fmt.Errorf("connecting to MongoDB: %v", err)
		}
		defer session.Close()
		_, err = mongosource.WriteTable(ctx, session, t)
		return err
	case strings.HasSuffix(output, ".db"):
		log.Logf("Dumping dataset to SQLite3 file %s...", output)
		adapter, err := sqlite3adapter.New(output)
		if err != nil {
			return fmt.Errorf("opening SQLite3 file %s: %v", output, err)
		}
		_, err = sqlsource.WriteTable(ctx, adapter, t)
		return err
	default:
		log.Logf("Creating %s to dump output dataset...", output)
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("creating output CSV file %s: %v", output, err)
		}
		defer f.Close()
		return csv.WriteTable(f, t)
	}
}
