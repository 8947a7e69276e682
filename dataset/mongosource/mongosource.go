/*
Package mongosource provides loading and dumping of boolean attribute
tables from a MongoDB database: one document per sample on a samples
collection, with one boolean field per attribute.
*/
package mongosource

import (
	"context"
	"fmt"

	"github.com/subgroups/dssd/dataset"
	mgo "gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

const (
	samplesCollectionName = "samples"
)

/*
ReadTable takes a context, a MongoDB database session and a slice of
attribute names, and returns a dataset.Table with those attributes loaded
from the samples collection of the session's default database, or an
error. Documents missing a requested attribute or holding a non-boolean
value for it are reported as errors rather than skipped.
*/
func ReadTable(ctx context.Context, session *mgo.Session, attributes []string) (*dataset.Table, error) {
	t, err := dataset.NewTable(attributes)
	if err != nil {
		return nil, fmt.Errorf("reading table from mongodb: %v", err)
	}
	iter := samplesCollection(session).Find(nil).Sort("_id").Iter()
	defer iter.Close()
	for i := 0; ; i++ {
		doc := bson.M{}
		if !iter.Next(&doc) {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		values := make(map[string]bool, len(attributes))
		for _, name := range attributes {
			raw, ok := doc[name]
			if !ok {
				return nil, fmt.Errorf("reading table from mongodb: document %d has no value for attribute %q", i, name)
			}
			v, ok := raw.(bool)
			if !ok {
				return nil, fmt.Errorf("reading table from mongodb: document %d holds %T value for attribute %q, expected bool", i, raw, name)
			}
			values[name] = v
		}
		if err := t.AddRow(values); err != nil {
			return nil, fmt.Errorf("reading table from mongodb: %v", err)
		}
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("reading table from mongodb: %v", err)
	}
	return t, nil
}

/*
WriteTable takes a context, a MongoDB database session and a
dataset.Table and inserts every row of the table as a document on the
samples collection of the session's default database, returning the
number of inserted documents or an error.
*/
func WriteTable(ctx context.Context, session *mgo.Session, t *dataset.Table) (int, error) {
	c := samplesCollection(session)
	for i := 0; i < t.Count(); i++ {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		row, err := t.Row(i)
		if err != nil {
			return i, fmt.Errorf("writing table to mongodb: %v", err)
		}
		doc := make(bson.M, len(row))
		for name, v := range row {
			doc[name] = v
		}
		if err := c.Insert(doc); err != nil {
			return i, fmt.Errorf("writing table to mongodb: inserting document %d: %v", i, err)
		}
	}
	return t.Count(), nil
}

func samplesCollection(session *mgo.Session) *mgo.Collection {
	return session.DB("").C(samplesCollectionName)
}
