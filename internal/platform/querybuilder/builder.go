package querybuilder

import (
	"fmt"
	"strconv"
	"strings"
)

// PlaceholderFormat selects how bind parameters are rendered.
type PlaceholderFormat int

const (
	// Dollar renders $1, $2, ... (postgres, pgx).
	Dollar PlaceholderFormat = iota
	// Question renders ? for every parameter (sqlite).
	Question
)

func (f PlaceholderFormat) placeholder(i int) string {
	if f == Question {
		return "?"
	}
	return "$" + strconv.Itoa(i)
}

// statement accumulates SQL text and bind arguments for one query.
type statement struct {
	buf    strings.Builder
	args   []any
	format PlaceholderFormat
}

func (s *statement) bind(value any) {
	s.args = append(s.args, value)
	s.buf.WriteString(s.format.placeholder(len(s.args)))
}

// expand copies expr, replacing each ? with the next bound argument.
func (s *statement) expand(expr string, exprArgs []any) {
	next := 0
	for i := 0; i < len(expr); i++ {
		if expr[i] == '?' && next < len(exprArgs) {
			s.bind(exprArgs[next])
			next++
			continue
		}
		s.buf.WriteByte(expr[i])
	}
}

type Condition interface {
	appendSQL(s *statement)
}

type eqCondition struct {
	column string
	value  any
}

func Eq(column string, value any) Condition {
	return eqCondition{column: column, value: value}
}

func (c eqCondition) appendSQL(s *statement) {
	s.buf.WriteString(c.column)
	s.buf.WriteString(" = ")
	s.bind(c.value)
}

type inCondition struct {
	column string
	values []any
}

func In(column string, values []any) Condition {
	return inCondition{column: column, values: values}
}

func (c inCondition) appendSQL(s *statement) {
	if len(c.values) == 0 {
		s.buf.WriteString("1=0")
		return
	}

	s.buf.WriteString(c.column)
	s.buf.WriteString(" IN (")
	for i, v := range c.values {
		if i > 0 {
			s.buf.WriteString(", ")
		}
		s.bind(v)
	}
	s.buf.WriteString(")")
}

type isNullCondition struct {
	column string
}

func IsNull(column string) Condition {
	return isNullCondition{column: column}
}

func (c isNullCondition) appendSQL(s *statement) {
	s.buf.WriteString(c.column)
	s.buf.WriteString(" IS NULL")
}

type exprCondition struct {
	expr string
	args []any
}

// Expr embeds raw SQL; each ? consumes one of args.
func Expr(expr string, args ...any) Condition {
	return exprCondition{expr: expr, args: args}
}

func (c exprCondition) appendSQL(s *statement) {
	s.expand(c.expr, c.args)
}

// Ident double-quotes an identifier so mixed-case and symbolic column names such as "G+A" survive.
func Ident(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// Idents quotes every name.
func Idents(names ...string) []string {
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = Ident(name)
	}
	return out
}

type SelectBuilder struct {
	columns []string
	table   string
	where   []Condition
	orderBy []string
	limit   int
	format  PlaceholderFormat
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

func (b *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *SelectBuilder) OrderBy(parts ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, parts...)
	return b
}

func (b *SelectBuilder) Limit(limit int) *SelectBuilder {
	b.limit = limit
	return b
}

func (b *SelectBuilder) PlaceholderFormat(format PlaceholderFormat) *SelectBuilder {
	b.format = format
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("select columns are required")
	}
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("select table is required")
	}

	s := &statement{format: b.format}
	s.buf.WriteString("SELECT ")
	s.buf.WriteString(strings.Join(b.columns, ", "))
	s.buf.WriteString(" FROM ")
	s.buf.WriteString(b.table)

	appendWhereClause(s, b.where)
	if len(b.orderBy) > 0 {
		s.buf.WriteString(" ORDER BY ")
		s.buf.WriteString(strings.Join(b.orderBy, ", "))
	}
	if b.limit > 0 {
		s.buf.WriteString(" LIMIT ")
		s.buf.WriteString(strconv.Itoa(b.limit))
	}

	return s.buf.String(), s.args, nil
}

type InsertBuilder struct {
	table   string
	columns []string
	rows    [][]any
	suffix  string
	format  PlaceholderFormat
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

func (b *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	b.columns = append([]string(nil), columns...)
	return b
}

// Values appends one row; call it repeatedly for a multi-row insert.
func (b *InsertBuilder) Values(values ...any) *InsertBuilder {
	b.rows = append(b.rows, append([]any(nil), values...))
	return b
}

func (b *InsertBuilder) Suffix(sql string) *InsertBuilder {
	b.suffix = strings.TrimSpace(sql)
	return b
}

func (b *InsertBuilder) PlaceholderFormat(format PlaceholderFormat) *InsertBuilder {
	b.format = format
	return b
}

func (b *InsertBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("insert table is required")
	}
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("insert columns are required")
	}
	if len(b.rows) == 0 {
		return "", nil, fmt.Errorf("insert values are required")
	}

	s := &statement{format: b.format, args: make([]any, 0, len(b.rows)*len(b.columns))}
	s.buf.WriteString("INSERT INTO ")
	s.buf.WriteString(b.table)
	s.buf.WriteString(" (")
	s.buf.WriteString(strings.Join(b.columns, ", "))
	s.buf.WriteString(") VALUES ")

	for rowIdx, row := range b.rows {
		if len(row) != len(b.columns) {
			return "", nil, fmt.Errorf("insert row %d has %d values, expected %d", rowIdx, len(row), len(b.columns))
		}
		if rowIdx > 0 {
			s.buf.WriteString(", ")
		}
		s.buf.WriteString("(")
		for colIdx, value := range row {
			if colIdx > 0 {
				s.buf.WriteString(", ")
			}
			s.bind(value)
		}
		s.buf.WriteString(")")
	}

	if b.suffix != "" {
		s.buf.WriteString(" ")
		s.buf.WriteString(b.suffix)
	}

	return s.buf.String(), s.args, nil
}

type DeleteBuilder struct {
	table  string
	where  []Condition
	format PlaceholderFormat
}

func DeleteFrom(table string) *DeleteBuilder {
	return &DeleteBuilder{table: table}
}

func (b *DeleteBuilder) Where(conditions ...Condition) *DeleteBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *DeleteBuilder) PlaceholderFormat(format PlaceholderFormat) *DeleteBuilder {
	b.format = format
	return b
}

// ToSQL refuses an unconditional delete.
func (b *DeleteBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("delete table is required")
	}
	if len(b.where) == 0 {
		return "", nil, fmt.Errorf("delete without where clause on %s", b.table)
	}

	s := &statement{format: b.format}
	s.buf.WriteString("DELETE FROM ")
	s.buf.WriteString(b.table)
	appendWhereClause(s, b.where)

	return s.buf.String(), s.args, nil
}

func appendWhereClause(s *statement, conditions []Condition) {
	if len(conditions) == 0 {
		return
	}
	s.buf.WriteString(" WHERE ")
	for i, c := range conditions {
		if i > 0 {
			s.buf.WriteString(" AND ")
		}
		c.appendSQL(s)
	}
}
