// Package query 將列表端點的原始查詢參數編譯為結構化查詢描述
// 各集合共用同一套編譯規則：searchTerm 展開為不分大小寫的子字串 OR 群組，
// 其餘鍵經允許清單對應為等值條件，再附上分頁與排序設定
package query

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

const (
	// DefaultPage 頁碼解析失敗或缺漏時的預設值
	DefaultPage = 1
	// DefaultLimit 每頁筆數解析失敗或缺漏時的預設值
	DefaultLimit = 10

	defaultSortColumn = "created_at"
)

// reserved 保留參數，不會被當成過濾條件
var reserved = map[string]struct{}{
	"searchTerm": {},
	"page":       {},
	"limit":      {},
	"sortBy":     {},
	"sortOrder":  {},
}

// Op 條件運算子
type Op int

const (
	// OpEquals 等值比對
	OpEquals Op = iota
	// OpContainsFold 不分大小寫的子字串比對
	OpContainsFold
)

// Condition 單一欄位條件
type Condition struct {
	Column string
	Op     Op
	Value  string
}

// Spec 描述單一集合可搜尋、可過濾、可排序的欄位
// 過濾與排序鍵以允許清單對應至實際欄位名稱，未列入的鍵一律忽略
type Spec struct {
	Searchable []string
	Filterable map[string]string
	Sortable   map[string]string
}

// Query 編譯完成的查詢描述，Search 為 OR 群組，Filters 為 AND 條件
type Query struct {
	Search  []Condition
	Filters []Condition
	SortBy  string
	Desc    bool
	Page    int
	Limit   int
	Skip    int
}

// Params 將 URL 查詢參數攤平為單值映射（同名參數取第一個）
func Params(values url.Values) map[string]string {
	params := make(map[string]string, len(values))
	for key := range values {
		params[key] = values.Get(key)
	}
	return params
}

// Compile 依集合規格編譯查詢參數，不會失敗；格式錯誤的輸入落回預設值
func Compile(params map[string]string, spec Spec) Query {
	q := Query{
		Page:   DefaultPage,
		Limit:  DefaultLimit,
		SortBy: defaultSortColumn,
		Desc:   true,
	}

	if n, err := strconv.Atoi(params["page"]); err == nil && n > 0 {
		q.Page = n
	}
	if n, err := strconv.Atoi(params["limit"]); err == nil && n > 0 {
		q.Limit = n
	}
	q.Skip = (q.Page - 1) * q.Limit

	if column, ok := spec.Sortable[params["sortBy"]]; ok {
		q.SortBy = column
	}
	if strings.EqualFold(params["sortOrder"], "asc") {
		q.Desc = false
	}

	if term := params["searchTerm"]; term != "" {
		for _, column := range spec.Searchable {
			q.Search = append(q.Search, Condition{Column: column, Op: OpContainsFold, Value: term})
		}
	}

	for key, value := range params {
		if _, ok := reserved[key]; ok {
			continue
		}
		column, ok := spec.Filterable[key]
		if !ok {
			continue
		}
		q.Filters = append(q.Filters, Condition{Column: column, Op: OpEquals, Value: value})
	}
	// map 走訪順序不定，排序讓產出的 SQL 可重現
	sort.Slice(q.Filters, func(i, j int) bool { return q.Filters[i].Column < q.Filters[j].Column })

	return q
}

// WhereSQL 組出 WHERE 子句與位置參數；無條件時回傳空字串
func (q Query) WhereSQL() (string, []any) {
	var groups []string
	var args []any

	if len(q.Search) > 0 {
		var ors []string
		for _, c := range q.Search {
			args = append(args, "%"+c.Value+"%")
			ors = append(ors, fmt.Sprintf("%s ILIKE $%d", c.Column, len(args)))
		}
		groups = append(groups, "("+strings.Join(ors, " OR ")+")")
	}
	for _, c := range q.Filters {
		args = append(args, c.Value)
		groups = append(groups, fmt.Sprintf("%s = $%d", c.Column, len(args)))
	}

	if len(groups) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(groups, " AND "), args
}

// OrderSQL 組出 ORDER BY 子句
func (q Query) OrderSQL() string {
	direction := "ASC"
	if q.Desc {
		direction = "DESC"
	}
	return fmt.Sprintf(" ORDER BY %s %s", q.SortBy, direction)
}

// LimitSQL 組出 LIMIT/OFFSET 子句
func (q Query) LimitSQL() string {
	return fmt.Sprintf(" LIMIT %d OFFSET %d", q.Limit, q.Skip)
}
