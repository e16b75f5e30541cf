package postgres

import (
	"fmt"
	"strings"

	"github.com/klueko/sheos/internal/repository"
)

const categoryJoin = `
		INNER JOIN product_categories pc ON pc.product_id = p.id
		INNER JOIN categories c ON c.id = pc.category_id`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// predicates accumulates AND-combined WHERE conditions and their positional
// arguments. The same value is shared by the page and count queries so both
// see identical filtering.
type predicates struct {
	conds        []string
	args         []any
	joinCategory bool
}

// catalogPredicates builds the catalog conditions. p.is_active = true is
// always present; every other condition appears only when its filter is set.
func catalogPredicates(f repository.CatalogFilter) *predicates {
	p := &predicates{conds: []string{"p.is_active = true"}}

	if f.Search != nil && *f.Search != "" {
		n := p.arg("%" + likeEscaper.Replace(*f.Search) + "%")
		p.conds = append(p.conds, fmt.Sprintf(
			"(p.name ILIKE %[1]s OR p.description ILIKE %[1]s OR p.short_description ILIKE %[1]s)", n))
	}
	if f.BrandID != nil {
		p.where("p.brand_id = %s::bigint", *f.BrandID)
	}
	if f.CategoryID != nil {
		p.joinCategory = true
		p.where("c.id = %s::bigint", *f.CategoryID)
	}
	if f.Vegan {
		p.conds = append(p.conds, "p.is_vegan = true")
	}
	if f.SteelToe {
		p.conds = append(p.conds, "p.has_steel_toe = true")
	}
	if f.MinPrice != nil {
		p.where("p.price >= %s::numeric", f.MinPrice.String())
	}
	if f.MaxPrice != nil {
		p.where("p.price <= %s::numeric", f.MaxPrice.String())
	}

	return p
}

// arg appends v and returns its placeholder.
func (p *predicates) arg(v any) string {
	p.args = append(p.args, v)
	return fmt.Sprintf("$%d", len(p.args))
}

func (p *predicates) where(format string, v any) {
	p.conds = append(p.conds, fmt.Sprintf(format, p.arg(v)))
}

func (p *predicates) joins() string {
	if p.joinCategory {
		return categoryJoin
	}
	return ""
}

func (p *predicates) whereClause() string {
	if len(p.conds) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(p.conds, " AND ")
}

// orderBy renders the ORDER BY list. p.id is always the last key so pages
// are stable when the primary key ties.
func orderBy(s repository.Sort) string {
	dir := "DESC"
	if s.Ascending {
		dir = "ASC"
	}
	switch s.Field {
	case repository.SortPrice:
		return "p.price " + dir + ", p.id " + dir
	case repository.SortName:
		return "p.name " + dir + ", p.id " + dir
	default:
		return "p.created_at DESC, p.id DESC"
	}
}
