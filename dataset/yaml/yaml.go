/*
Package yaml provides methods to parse dataset metadata, the document
naming the boolean attributes of a binarized dataset, from YAML documents.
*/
package yaml

import (
	"fmt"
	"io/ioutil"

	yaml "gopkg.in/yaml.v2"
)

/*
Metadata describes a binarized dataset: the boolean attributes to load
from its backend and, optionally, the subset of them a size-weighted
quality measure should treat as interest attributes.
*/
type Metadata struct {
	Attributes []string `yaml:"attributes"`
	Interests  []string `yaml:"interests"`
}

/*
ReadMetadata takes a slice of bytes with a dataset specification in YML
and returns the Metadata parsed from it or an error.
The YML is expected to be an object with an attributes property listing
the boolean attribute names, and optionally an interests property listing
a subset of them.
*/
func ReadMetadata(md []byte) (*Metadata, error) {
	metadata := &Metadata{}
	err := yaml.Unmarshal(md, metadata)
	if err != nil {
		return nil, fmt.Errorf("parsing yml metadata: %v", err)
	}
	if len(metadata.Attributes) == 0 {
		return nil, fmt.Errorf("metadata file declares no attributes")
	}
	declared := make(map[string]bool, len(metadata.Attributes))
	for _, name := range metadata.Attributes {
		if name == "" {
			return nil, fmt.Errorf("metadata file declares an empty attribute name")
		}
		if declared[name] {
			return nil, fmt.Errorf("metadata file declares attribute %q twice", name)
		}
		declared[name] = true
	}
	for _, name := range metadata.Interests {
		if !declared[name] {
			return nil, fmt.Errorf("metadata file declares interest %q which is not a declared attribute", name)
		}
	}
	return metadata, nil
}

/*
ReadMetadataFromFile takes a filepath string, reads its contents and uses
ReadMetadata to parse it and return the parsed Metadata or an error.
If the file indicated by the filepath cannot be opened for reading an
error will be returned.
*/
func ReadMetadataFromFile(filepath string) (*Metadata, error) {
	md, err := ioutil.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading metadata yml file %s: %v", filepath, err)
	}
	metadata, err := ReadMetadata(md)
	if err != nil {
		err = fmt.Errorf("parsing metadata yml file %s: %v", filepath, err)
	}
	return metadata, err
}
