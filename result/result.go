/*
Package result defines how mined subgroup sets are encoded and persisted.
The search itself only returns descriptions; storing them under a run
name, so different mining runs over the same dataset can be compared
later, is this package's concern.
*/
package result

import (
	"context"

	"github.com/subgroups/dssd/subgroup"
)

/*
EncodeDecoder is an interface for objects that allow encoding subgroup
sets as slices of bytes and decoding them back to subgroup sets. It is
used to serialize mined results into a representation to store on a
backend.
*/
type EncodeDecoder interface {

	// Encode receives a slice of subgroup descriptions and returns a
	// slice of bytes with the descriptions encoded or an error if the
	// encoding could not be performed for some reason. Its
	// counterpart is Decode.
	Encode([]subgroup.Description) ([]byte, error)

	// Decode receives a slice of bytes and returns a slice of
	// subgroup descriptions decoded from it or an error if the
	// decoding could not be performed for some reason.
	Decode([]byte) ([]subgroup.Description, error)
}

/*
Store represents a place where mined subgroup sets can be kept under a
run name and retrieved later.

All its methods have a context.Context as first parameter that
implementations may use to allow timeouts and cancellations on the Store
operations.
*/
type Store interface {
	// Save takes a run name and a slice of subgroup descriptions and
	// persists the descriptions under the name, replacing any
	// previously saved set for it.
	Save(ctx context.Context, name string, subgroups []subgroup.Description) error
	// Load takes a run name and returns the subgroup descriptions
	// saved under it, or an error if the name is unknown.
	Load(ctx context.Context, name string) ([]subgroup.Description, error)
	// Delete takes a run name and removes the subgroup set saved
	// under it, if any.
	Delete(ctx context.Context, name string) error
}
