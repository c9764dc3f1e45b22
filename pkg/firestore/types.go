package firestore

import "strings"

// Value is a typed Firestore document value. Exactly one field is set.
type Value struct {
	StringValue    *string `json:"stringValue,omitempty"`
	TimestampValue *string `json:"timestampValue,omitempty"`
	BooleanValue   *bool   `json:"booleanValue,omitempty"`
	IntegerValue   *string `json:"integerValue,omitempty"`
	NullValue      *string `json:"nullValue,omitempty"`
}

// String builds a string value.
func String(s string) Value {
	return Value{StringValue: &s}
}

// Timestamp builds a timestamp value from an RFC3339 string.
func Timestamp(s string) Value {
	return Value{TimestampValue: &s}
}

// Boolean builds a boolean value.
func Boolean(b bool) Value {
	return Value{BooleanValue: &b}
}

// Null builds a null value.
func Null() Value {
	nv := "NULL_VALUE"
	return Value{NullValue: &nv}
}

// AsString returns the string content of a string or timestamp value, or "".
func (v Value) AsString() string {
	if v.StringValue != nil {
		return *v.StringValue
	}
	if v.TimestampValue != nil {
		return *v.TimestampValue
	}
	return ""
}

// Document is a stored document. Name is the full resource path; the document
// key is its last path segment.
type Document struct {
	Name       string           `json:"name,omitempty"`
	Fields     map[string]Value `json:"fields,omitempty"`
	CreateTime string           `json:"createTime,omitempty"`
	UpdateTime string           `json:"updateTime,omitempty"`
}

// ID returns the document key.
func (d Document) ID() string {
	idx := strings.LastIndex(d.Name, "/")
	if idx < 0 {
		return d.Name
	}
	return d.Name[idx+1:]
}

// GetString returns the string content of a named field, or "".
func (d Document) GetString(field string) string {
	return d.Fields[field].AsString()
}

// --- structured query ---

// Query describes a single-collection equality query with optional ordering.
type Query struct {
	Collection string
	Where      []FieldFilter
	OrderBy    []Order
	Limit      int
}

// FieldFilter is an equality condition on one field.
type FieldFilter struct {
	Field string
	Value Value
}

// Order is a sort clause. Descending defaults to ascending when false.
type Order struct {
	Field      string
	Descending bool
}

// --- wire types for :runQuery ---

type runQueryRequest struct {
	StructuredQuery structuredQuery `json:"structuredQuery"`
}

type structuredQuery struct {
	From    []collectionSelector `json:"from"`
	Where   *filter              `json:"where,omitempty"`
	OrderBy []order              `json:"orderBy,omitempty"`
	Limit   int                  `json:"limit,omitempty"`
}

type collectionSelector struct {
	CollectionID string `json:"collectionId"`
}

type filter struct {
	CompositeFilter *compositeFilter `json:"compositeFilter,omitempty"`
	FieldFilter     *fieldFilter     `json:"fieldFilter,omitempty"`
}

type compositeFilter struct {
	Op      string   `json:"op"`
	Filters []filter `json:"filters"`
}

type fieldFilter struct {
	Field fieldReference `json:"field"`
	Op    string         `json:"op"`
	Value Value          `json:"value"`
}

type fieldReference struct {
	FieldPath string `json:"fieldPath"`
}

type order struct {
	Field     fieldReference `json:"field"`
	Direction string         `json:"direction"`
}

type runQueryResult struct {
	Document *Document `json:"document,omitempty"`
}

type statusBody struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}
