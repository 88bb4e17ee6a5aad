package litegraph

import (
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	"github.com/fivetwenty-io/litegraph/internal/constants"
	"github.com/fivetwenty-io/litegraph/internal/validation"
)

// EnumerationOrder controls the sort order of enumeration and search results.
type EnumerationOrder string

// Enumeration orders.
const (
	OrderCreatedAscending  EnumerationOrder = "CreatedAscending"
	OrderCreatedDescending EnumerationOrder = "CreatedDescending"
	OrderNameAscending     EnumerationOrder = "NameAscending"
	OrderNameDescending    EnumerationOrder = "NameDescending"
	OrderGUIDAscending     EnumerationOrder = "GuidAscending"
	OrderGUIDDescending    EnumerationOrder = "GuidDescending"
	OrderCostAscending     EnumerationOrder = "CostAscending"
	OrderCostDescending    EnumerationOrder = "CostDescending"
)

// Operator is a comparison operator in an Expr.
type Operator string

// Operators.
const (
	OperatorEquals      Operator = "Equals"
	OperatorGreaterThan Operator = "GreaterThan"
	OperatorLessThan    Operator = "LessThan"
)

// Expr is a filter expression evaluated by the server against object data.
// Left and Right may themselves be nested Expr values.
type Expr struct {
	Left     interface{} `json:"Left"     yaml:"left"`
	Operator Operator    `json:"Operator" yaml:"operator" validate:"oneof=Equals GreaterThan LessThan"`
	Right    interface{} `json:"Right"    yaml:"right"`
}

// EnumerationQuery selects a page of objects. Build one with
// NewEnumerationQuery so unset fields carry the server defaults.
type EnumerationQuery struct {
	Ordering            EnumerationOrder  `json:"Ordering,omitempty"          yaml:"ordering,omitempty"`
	IncludeData         bool              `json:"IncludeData"                 yaml:"include_data"`
	IncludeSubordinates bool              `json:"IncludeSubordinates"         yaml:"include_subordinates"`
	MaxResults          int               `json:"MaxResults"                  yaml:"max_results"          validate:"min=1,max=1000"`
	ContinuationToken   string            `json:"ContinuationToken,omitempty" yaml:"continuation_token,omitempty"`
	Labels              []string          `json:"Labels,omitempty"            yaml:"labels,omitempty"`
	Tags                map[string]string `json:"Tags,omitempty"              yaml:"tags,omitempty"`
	Expr                *Expr             `json:"Expr,omitempty"              yaml:"expr,omitempty"`
}

// NewEnumerationQuery returns a query ordered newest first with the default
// page size.
func NewEnumerationQuery() *EnumerationQuery {
	return &EnumerationQuery{
		Ordering:   OrderCreatedDescending,
		MaxResults: constants.DefaultEnumerationResults,
	}
}

// WithMaxResults sets the page size.
func (q *EnumerationQuery) WithMaxResults(n int) *EnumerationQuery {
	q.MaxResults = n

	return q
}

// WithOrdering sets the sort order.
func (q *EnumerationQuery) WithOrdering(o EnumerationOrder) *EnumerationQuery {
	q.Ordering = o

	return q
}

// WithContinuationToken resumes a previous enumeration.
func (q *EnumerationQuery) WithContinuationToken(token string) *EnumerationQuery {
	q.ContinuationToken = token

	return q
}

// WithIncludeData requests object data in the results.
func (q *EnumerationQuery) WithIncludeData(include bool) *EnumerationQuery {
	q.IncludeData = include

	return q
}

// WithIncludeSubordinates requests labels, tags and vectors in the results.
func (q *EnumerationQuery) WithIncludeSubordinates(include bool) *EnumerationQuery {
	q.IncludeSubordinates = include

	return q
}

// WithLabels adds labels to filter on. Labels form a set; duplicates are
// ignored and first-seen order is kept.
func (q *EnumerationQuery) WithLabels(labels ...string) *EnumerationQuery {
	seen := make(map[string]struct{}, len(q.Labels)+len(labels))
	for _, l := range q.Labels {
		seen[l] = struct{}{}
	}

	for _, l := range labels {
		if _, ok := seen[l]; ok {
			continue
		}

		seen[l] = struct{}{}
		q.Labels = append(q.Labels, l)
	}

	return q
}

// WithTag adds a tag to filter on.
func (q *EnumerationQuery) WithTag(key, value string) *EnumerationQuery {
	if q.Tags == nil {
		q.Tags = make(map[string]string)
	}

	q.Tags[key] = value

	return q
}

// WithExpr sets the filter expression.
func (q *EnumerationQuery) WithExpr(expr *Expr) *EnumerationQuery {
	q.Expr = expr

	return q
}

// Validate checks the query bounds.
func (q *EnumerationQuery) Validate() error {
	return Validate(q)
}

// Timestamp records the timing of a server-side operation.
type Timestamp struct {
	Start    time.Time         `json:"Start"              yaml:"start"`
	End      *time.Time        `json:"End,omitempty"      yaml:"end,omitempty"`
	TotalMs  float64           `json:"TotalMs"            yaml:"total_ms"`
	Messages map[string]string `json:"Messages,omitempty" yaml:"messages,omitempty"`
}

// Elapsed returns End-Start, or the time since Start when End is unset.
func (t Timestamp) Elapsed() time.Duration {
	if t.Start.IsZero() {
		return 0
	}

	if t.End == nil {
		return time.Since(t.Start)
	}

	return t.End.Sub(t.Start)
}

// EnumerationResult is one page of an enumeration.
type EnumerationResult[T any] struct {
	Success            bool      `json:"Success"                     yaml:"success"`
	Timestamp          Timestamp `json:"Timestamp"                   yaml:"timestamp"`
	MaxResults         int       `json:"MaxResults"                  yaml:"max_results"`
	IterationsRequired int       `json:"IterationsRequired"          yaml:"iterations_required"`
	ContinuationToken  string    `json:"ContinuationToken,omitempty" yaml:"continuation_token,omitempty"`
	EndOfResults       bool      `json:"EndOfResults"                yaml:"end_of_results"`
	TotalRecords       int64     `json:"TotalRecords"                yaml:"total_records"`
	RecordsRemaining   int64     `json:"RecordsRemaining"            yaml:"records_remaining"`
	Objects            []T       `json:"Objects"                     yaml:"objects"`
}

// UnmarshalJSON decodes a page, normalizing a missing or null Objects list
// to an empty one.
func (r *EnumerationResult[T]) UnmarshalJSON(data []byte) error {
	var p plainEnumerationResult[T]

	err := json.Unmarshal(data, &p)
	if err != nil {
		return fmt.Errorf("parsing enumeration result: %w", err)
	}

	if p.Objects == nil {
		p.Objects = []T{}
	}

	*r = EnumerationResult[T](p)

	return nil
}

// plainEnumerationResult has no methods, so decoding into it does not recurse.
type plainEnumerationResult[T any] EnumerationResult[T]

// Validate checks v against its validation tags and returns a
// *ValidationError naming the model when it fails.
func Validate(v interface{}) error {
	problems := validation.Struct(v)
	if len(problems) == 0 {
		return nil
	}

	return &ValidationError{Model: modelName(v), Problems: problems}
}

func modelName(v interface{}) string {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t == nil || t.Name() == "" {
		return "request"
	}

	return t.Name()
}
