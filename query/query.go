// Package query describes record searches independently of the store that
// executes them. A Spec is built from optional search parameters and then
// rendered by a store adapter into its native filter, sort and window.
package query

import "time"

// Identity is the store-neutral name of a record's id field.
const Identity = "id"

type Op int

const (
	// Match is a case-insensitive substring match on a text field.
	Match Op = iota + 1
	// AtLeast is an inclusive lower bound.
	AtLeast
	// AtMost is an inclusive upper bound.
	AtMost
	// Contains matches when an array field holds the value.
	Contains
)

func (o Op) String() string {
	switch o {
	case Match:
		return "match"
	case AtLeast:
		return "at_least"
	case AtMost:
		return "at_most"
	case Contains:
		return "contains"
	}
	return "unknown"
}

type Condition struct {
	Field string
	Op    Op
	Value interface{}
}

type Direction int

const (
	Asc  Direction = 1
	Desc Direction = -1
)

type Sort struct {
	Field     string
	Direction Direction
}

// Spec is a complete, unexecuted search: every condition must hold.
type Spec struct {
	Conditions []Condition
	Sort       Sort
	Skip       int64
	Limit      int64
}

// Builder folds optional search values into a Spec. Each method appends a
// condition only when its value is present, so conditions keep the order in
// which the methods were called.
type Builder struct {
	conditions []Condition
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) Match(field string, value *string) *Builder {
	if value != nil {
		b.conditions = append(b.conditions, Condition{Field: field, Op: Match, Value: *value})
	}
	return b
}

func (b *Builder) AtLeast(field string, value *time.Time) *Builder {
	if value != nil {
		b.conditions = append(b.conditions, Condition{Field: field, Op: AtLeast, Value: *value})
	}
	return b
}

func (b *Builder) AtMost(field string, value *time.Time) *Builder {
	if value != nil {
		b.conditions = append(b.conditions, Condition{Field: field, Op: AtMost, Value: *value})
	}
	return b
}

func (b *Builder) Contains(field string, value *string) *Builder {
	if value != nil {
		b.conditions = append(b.conditions, Condition{Field: field, Op: Contains, Value: *value})
	}
	return b
}

// Build returns the Spec sorted by sort and windowed by p.
func (b *Builder) Build(sort Sort, p Pagination, maxPageSize int) Spec {
	skip, limit := p.Window(maxPageSize)
	return Spec{
		Conditions: b.conditions,
		Sort:       sort,
		Skip:       skip,
		Limit:      limit,
	}
}
