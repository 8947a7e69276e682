/*
Package subgroup defines subgroup descriptions: conjunctions of boolean
attribute conditions that select a subset of the rows of a dataset.
*/
package subgroup

import (
	"fmt"
	"sort"
	"strings"
)

/*
Condition represents a constraint on a boolean attribute: the attribute
must take the given value.
*/
type Condition struct {
	Attribute string
	Value     bool
}

func (c Condition) String() string {
	return fmt.Sprintf("%s=%t", c.Attribute, c.Value)
}

/*
Description represents a subgroup description: a conjunction of conditions
on distinct attributes. The empty description matches every row.

Descriptions are value types: Extend and Without return new descriptions
and never modify their receiver, so a description placed in a beam or a
top-k tracker cannot change under it.

Condition order is preserved from construction: it determines the order in
which dominance pruning considers conditions, but it is irrelevant for
equality, which compares conditions as a set.
*/
type Description struct {
	conditions []Condition
}

/*
New takes zero or more conditions and returns a description constraining
exactly those attributes. It panics if two conditions name the same
attribute, since a description cannot constrain an attribute twice.
*/
func New(conditions ...Condition) Description {
	d := Description{}
	for _, c := range conditions {
		if d.Constrains(c.Attribute) {
			panic(fmt.Sprintf("subgroup: duplicate condition on attribute %q", c.Attribute))
		}
		d.conditions = append(d.conditions, c)
	}
	return d
}

/*
Extend takes a condition and returns a new description with the receiver's
conditions plus the given one appended. It panics if the receiver already
constrains the condition's attribute.
*/
func (d Description) Extend(c Condition) Description {
	if d.Constrains(c.Attribute) {
		panic(fmt.Sprintf("subgroup: attribute %q already constrained", c.Attribute))
	}
	conditions := make([]Condition, len(d.conditions), len(d.conditions)+1)
	copy(conditions, d.conditions)
	return Description{append(conditions, c)}
}

/*
Without takes an attribute name and returns a new description with every
condition of the receiver except the one on the given attribute, preserving
the order of the remaining conditions. If the receiver does not constrain
the attribute, the returned description is an identical copy.
*/
func (d Description) Without(attribute string) Description {
	conditions := make([]Condition, 0, len(d.conditions))
	for _, c := range d.conditions {
		if c.Attribute != attribute {
			conditions = append(conditions, c)
		}
	}
	return Description{conditions}
}

/*
Conditions returns a copy of the description's conditions in their
construction order.
*/
func (d Description) Conditions() []Condition {
	conditions := make([]Condition, len(d.conditions))
	copy(conditions, d.conditions)
	return conditions
}

/*
Len returns the number of conditions in the description.
*/
func (d Description) Len() int {
	return len(d.conditions)
}

/*
Constrains takes an attribute name and returns whether the description has
a condition on it.
*/
func (d Description) Constrains(attribute string) bool {
	_, ok := d.Value(attribute)
	return ok
}

/*
Value takes an attribute name and returns the value the description
requires for it and whether the description constrains it at all.
*/
func (d Description) Value(attribute string) (bool, bool) {
	for _, c := range d.conditions {
		if c.Attribute == attribute {
			return c.Value, true
		}
	}
	return false, false
}

/*
Equal takes another description and returns whether both constrain the same
attributes to the same values, regardless of condition order.
*/
func (d Description) Equal(other Description) bool {
	if len(d.conditions) != len(other.conditions) {
		return false
	}
	for _, c := range d.conditions {
		v, ok := other.Value(c.Attribute)
		if !ok || v != c.Value {
			return false
		}
	}
	return true
}

/*
Key returns a canonical string encoding of the description's condition set:
conditions sorted by attribute name. Two descriptions have the same key if
and only if they are Equal, so the key can index maps of descriptions.
*/
func (d Description) Key() string {
	parts := make([]string, len(d.conditions))
	for i, c := range d.conditions {
		parts[i] = c.String()
	}
	sort.Strings(parts)
	return strings.Join(parts, " && ")
}

func (d Description) String() string {
	if len(d.conditions) == 0 {
		return "(all rows)"
	}
	parts := make([]string, len(d.conditions))
	for i, c := range d.conditions {
		parts[i] = c.String()
	}
	return strings.Join(parts, " && ")
}
