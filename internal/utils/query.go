package utils

import (
	"strings"

	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern turns term into an ILIKE substring pattern. Wildcards in
// term match literally.
func ContainsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// ILikeContains is the condition matching column against a ContainsPattern.
func ILikeContains(column string) string {
	return column + ` ILIKE ? ESCAPE '\'`
}

// ApplySearch adds an ILIKE filter per search term. A row matches a term when
// any of the columns contains it; every term must match.
func ApplySearch(db *gorm.DB, search string, columns ...string) *gorm.DB {
	terms := strings.Fields(strings.ReplaceAll(search, ",", " "))
	if len(terms) == 0 || len(columns) == 0 {
		return db
	}

	for _, term := range terms {
		conds := make([]string, 0, len(columns))
		args := make([]interface{}, 0, len(columns))
		for _, col := range columns {
			conds = append(conds, ILikeContains(col))
			args = append(args, ContainsPattern(term))
		}
		db = db.Where("("+strings.Join(conds, " OR ")+")", args...)
	}
	return db
}

// ApplyOrdering translates a comma separated ordering parameter ("-amount,date")
// into ORDER BY clauses. Fields outside allowed are ignored; when nothing
// usable is given the fallback clause is used.
func ApplyOrdering(db *gorm.DB, ordering string, allowed map[string]string, fallback string) *gorm.DB {
	applied := false
	for _, field := range strings.Split(ordering, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		direction := "ASC"
		if strings.HasPrefix(field, "-") {
			direction = "DESC"
			field = strings.TrimPrefix(field, "-")
		}

		column, ok := allowed[field]
		if !ok {
			continue
		}
		db = db.Order(column + " " + direction)
		applied = true
	}

	if !applied && fallback != "" {
		db = db.Order(fallback)
	}
	return db
}
