package repository

import (
	"net/url"
	"strconv"
	"time"

	"gorm.io/gorm/clause"
)

type FilterKind int

const (
	// FilterRange compares strings lexicographically with inclusive bounds.
	// Years are stored as four digit strings so this orders them numerically.
	FilterRange FilterKind = iota
	FilterEqual
	FilterBool
	FilterIntEqual
	FilterIntRange
	FilterTimeRange
)

// FieldFilter binds query-string parameters to a column. Absent or
// unparseable parameters add no condition.
type FieldFilter struct {
	Kind  FilterKind
	Param string
	// UpperParam is the upper bound parameter for range kinds.
	UpperParam string
	Column     string
	// UpperColumn is compared against UpperParam when it differs from Column.
	UpperColumn string
}

// YearRange filters column between startYear and endYear.
func YearRange(column string) FieldFilter {
	return Range(column, "startYear", "endYear")
}

func Range(column, lower, upper string) FieldFilter {
	return FieldFilter{Kind: FilterRange, Column: column, Param: lower, UpperParam: upper}
}

func Equal(param, column string) FieldFilter {
	return FieldFilter{Kind: FilterEqual, Param: param, Column: column}
}

func Bool(param, column string) FieldFilter {
	return FieldFilter{Kind: FilterBool, Param: param, Column: column}
}

func IntEqual(param, column string) FieldFilter {
	return FieldFilter{Kind: FilterIntEqual, Param: param, Column: column}
}

func IntRange(column, lower, upper string) FieldFilter {
	return FieldFilter{Kind: FilterIntRange, Column: column, Param: lower, UpperParam: upper}
}

// TimeRange keeps rows whose column is at or after lower and whose
// upperColumn is at or before upper.
func TimeRange(column, upperColumn, lower, upper string) FieldFilter {
	return FieldFilter{Kind: FilterTimeRange, Column: column, UpperColumn: upperColumn, Param: lower, UpperParam: upper}
}

func (f FieldFilter) upperColumn() clause.Column {
	if f.UpperColumn != "" {
		return clause.Column{Name: f.UpperColumn}
	}
	return clause.Column{Name: f.Column}
}

// Conditions returns the clauses f contributes for the given query.
func (f FieldFilter) Conditions(q url.Values) []clause.Expression {
	col := clause.Column{Name: f.Column}
	lower := q.Get(f.Param)
	upper := ""
	if f.UpperParam != "" {
		upper = q.Get(f.UpperParam)
	}

	var exprs []clause.Expression
	switch f.Kind {
	case FilterRange:
		if lower != "" {
			exprs = append(exprs, clause.Gte{Column: col, Value: lower})
		}
		if upper != "" {
			exprs = append(exprs, clause.Lte{Column: f.upperColumn(), Value: upper})
		}
	case FilterEqual:
		if lower != "" {
			exprs = append(exprs, clause.Eq{Column: col, Value: lower})
		}
	case FilterBool:
		switch lower {
		case "true":
			exprs = append(exprs, clause.Eq{Column: col, Value: true})
		case "false":
			exprs = append(exprs, clause.Eq{Column: col, Value: false})
		}
	case FilterIntEqual:
		if n, err := strconv.Atoi(lower); err == nil {
			exprs = append(exprs, clause.Eq{Column: col, Value: n})
		}
	case FilterIntRange:
		if n, err := strconv.Atoi(lower); err == nil {
			exprs = append(exprs, clause.Gte{Column: col, Value: n})
		}
		if n, err := strconv.Atoi(upper); err == nil {
			exprs = append(exprs, clause.Lte{Column: f.upperColumn(), Value: n})
		}
	case FilterTimeRange:
		if t, ok := parseTime(lower); ok {
			exprs = append(exprs, clause.Gte{Column: col, Value: t})
		}
		if t, ok := parseTime(upper); ok {
			exprs = append(exprs, clause.Lte{Column: f.upperColumn(), Value: t})
		}
	}
	return exprs
}

// Conditions collects the clauses for every filter in order.
func Conditions(filters []FieldFilter, q url.Values) []clause.Expression {
	var exprs []clause.Expression
	for _, f := range filters {
		exprs = append(exprs, f.Conditions(q)...)
	}
	return exprs
}

func parseTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), true
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t.UTC(), true
	}
	return time.Time{}, false
}
