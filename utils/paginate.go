package utils

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// Range expresses a comparison filter on a single column. Nil members are
// skipped.
type Range struct {
	GTE any
	GT  any
	LTE any
	LT  any
}

// ListOptions carries the pagination/sort/projection keys, already stripped
// out of the filter.
type ListOptions struct {
	Page   int
	Limit  int
	Sort   string // comma-separated, leading '-' means descending
	Fields string // comma-separated inclusion list
}

// ListOptionsFromQuery reads page/limit/sort/fields from the query string
// and applies the defaults and the limit cap.
func ListOptionsFromQuery(c *gin.Context) ListOptions {
	opts := ListOptions{
		Page:   defaultPage,
		Limit:  defaultLimit,
		Sort:   c.Query("sort"),
		Fields: c.Query("fields"),
	}
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 0 {
		opts.Page = v
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
		opts.Limit = v
	}
	if opts.Limit > maxLimit {
		opts.Limit = maxLimit
	}
	return opts
}

var identPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

func applyFilter(q *gorm.DB, filter map[string]any) *gorm.DB {
	for field, value := range filter {
		if !identPattern.MatchString(field) {
			continue
		}
		if r, ok := value.(Range); ok {
			if r.GTE != nil {
				q = q.Where(field+" >= ?", r.GTE)
			}
			if r.GT != nil {
				q = q.Where(field+" > ?", r.GT)
			}
			if r.LTE != nil {
				q = q.Where(field+" <= ?", r.LTE)
			}
			if r.LT != nil {
				q = q.Where(field+" < ?", r.LT)
			}
			continue
		}
		q = q.Where(field+" = ?", value)
	}
	return q
}

func orderClause(sort string) string {
	if sort == "" {
		return "created_at DESC"
	}
	var parts []string
	for _, field := range strings.Split(sort, ",") {
		field = strings.TrimSpace(field)
		dir := " ASC"
		if strings.HasPrefix(field, "-") {
			field = strings.TrimPrefix(field, "-")
			dir = " DESC"
		}
		if identPattern.MatchString(field) {
			parts = append(parts, field+dir)
		}
	}
	if len(parts) == 0 {
		return "created_at DESC"
	}
	return strings.Join(parts, ", ")
}

func selectColumns(fields string) []string {
	if fields == "" {
		return nil
	}
	var cols []string
	for _, f := range strings.Split(fields, ",") {
		f = strings.TrimSpace(f)
		if identPattern.MatchString(f) {
			cols = append(cols, f)
		}
	}
	return cols
}

// Paginate runs the count and the data fetch as two independent queries
// against the filtered collection and fills dest with one page of rows.
// The total can drift from the page under concurrent writes; callers
// compute pages as ceil(total/limit) from the returned count.
func Paginate(db *gorm.DB, model any, filter map[string]any, opts ListOptions, dest any) (int64, error) {
	page := opts.Page
	if page < 1 {
		page = defaultPage
	}
	limit := opts.Limit
	if limit < 1 {
		limit = defaultLimit
	}

	var total int64
	if err := applyFilter(db.Model(model), filter).Count(&total).Error; err != nil {
		return 0, err
	}

	q := applyFilter(db.Model(model), filter).
		Order(orderClause(opts.Sort)).
		Offset((page - 1) * limit).
		Limit(limit)
	if cols := selectColumns(opts.Fields); cols != nil {
		q = q.Select(cols)
	}
	if err := q.Find(dest).Error; err != nil {
		return 0, err
	}
	return total, nil
}
