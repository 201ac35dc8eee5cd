package postgres

import (
	"fmt"
	"strings"

	"moviecatalog/query"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// searchScope renders a query.Spec as a gorm scope. columns maps the
// store-neutral field names to column names; query.Identity is always "id".
func searchScope(spec query.Spec, columns map[string]string) func(*gorm.DB) *gorm.DB {
	column := func(field string) string {
		if field == query.Identity {
			return "id"
		}
		if c, ok := columns[field]; ok {
			return c
		}
		return field
	}

	return func(db *gorm.DB) *gorm.DB {
		for _, c := range spec.Conditions {
			sql, args := condition(column(c.Field), c)
			db = db.Where(sql, args...)
		}

		for _, by := range orderBy(column, spec.Sort) {
			db = db.Order(by)
		}

		return db.Offset(int(spec.Skip)).Limit(int(spec.Limit))
	}
}

func condition(col string, c query.Condition) (string, []interface{}) {
	switch c.Op {
	case query.Match:
		pattern, _ := c.Value.(string)
		return fmt.Sprintf("%s ILIKE ?", col), []interface{}{"%" + likeEscaper.Replace(pattern) + "%"}
	case query.AtLeast:
		return fmt.Sprintf("%s >= ?", col), []interface{}{c.Value}
	case query.AtMost:
		return fmt.Sprintf("%s <= ?", col), []interface{}{c.Value}
	case query.Contains:
		return fmt.Sprintf("? = ANY(%s)", col), []interface{}{c.Value}
	}
	return "FALSE", nil
}

// orderBy breaks ties on the id so consecutive pages never overlap.
func orderBy(column func(string) string, s query.Sort) []clause.OrderByColumn {
	desc := s.Direction != query.Asc
	if s.Field == "" || s.Field == query.Identity {
		return []clause.OrderByColumn{{Column: clause.Column{Name: "id"}, Desc: desc}}
	}
	return []clause.OrderByColumn{
		{Column: clause.Column{Name: column(s.Field)}, Desc: desc},
		{Column: clause.Column{Name: "id"}, Desc: desc},
	}
}
