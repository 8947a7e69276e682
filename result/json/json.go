/*
Package json provides a JSON result.EncodeDecoder for subgroup sets.

A subgroup set is encoded as an array of descriptions, each an array of
condition objects, so that condition order survives the round trip:

	[
	  [{"attribute": "a_1", "value": true}, {"attribute": "b_0", "value": false}],
	  [{"attribute": "c_2", "value": true}]
	]
*/
package json

import (
	"encoding/json"
	"fmt"

	"github.com/subgroups/dssd/result"
	"github.com/subgroups/dssd/subgroup"
)

type condition struct {
	Attribute string `json:"attribute"`
	Value     bool   `json:"value"`
}

type encodeDecoder struct{}

/*
New returns a result.EncodeDecoder that encodes subgroup sets as JSON.
*/
func New() result.EncodeDecoder {
	return &encodeDecoder{}
}

func (encodeDecoder) Encode(subgroups []subgroup.Description) ([]byte, error) {
	encoded := make([][]condition, len(subgroups))
	for i, d := range subgroups {
		conditions := d.Conditions()
		encoded[i] = make([]condition, len(conditions))
		for j, c := range conditions {
			encoded[i][j] = condition{Attribute: c.Attribute, Value: c.Value}
		}
	}
	data, err := json.MarshalIndent(encoded, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding subgroups: %v", err)
	}
	return data, nil
}

func (encodeDecoder) Decode(data []byte) ([]subgroup.Description, error) {
	var encoded [][]condition
	if err := json.Unmarshal(data, &encoded); err != nil {
		return nil, fmt.Errorf("decoding subgroups: %v", err)
	}
	subgroups := make([]subgroup.Description, len(encoded))
	for i, conditions := range encoded {
		d := subgroup.New()
		for _, c := range conditions {
			if d.Constrains(c.Attribute) {
				return nil, fmt.Errorf("decoding subgroups: subgroup %d constrains attribute %q twice", i, c.Attribute)
			}
			d = d.Extend(subgroup.Condition{Attribute: c.Attribute, Value: c.Value})
		}
		subgroups[i] = d
	}
	return subgroups, nil
}
