package view

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/cases"

	"github.com/tuanvumaihuynh/food-catalog/internal/model"
	"github.com/tuanvumaihuynh/food-catalog/pkg/ptr"
)

const NotAvailable = "N/A"

type SortField string

const (
	SortByName       SortField = "name"
	SortByPnnsGroup  SortField = "pnns"
	SortByNutriScore SortField = "score"
	SortByBrand      SortField = "brand"
	SortByCategories SortField = "categories"
)

// SortFields lists the sortable columns in display order.
var SortFields = []SortField{SortByName, SortByPnnsGroup, SortByNutriScore, SortByBrand, SortByCategories}

func (f SortField) Validate() error {
	if slices.Contains(SortFields, f) {
		return nil
	}
	return fmt.Errorf("unknown sort field %q", string(f))
}

type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

func (o Order) Validate() error {
	if o == OrderAsc || o == OrderDesc {
		return nil
	}
	return fmt.Errorf("unknown order %q", string(o))
}

// RowsPerPageOptions are the accepted page sizes; the first one is the default.
var RowsPerPageOptions = []int{5, 10, 25}

// Row is a table row ready for display.
type Row struct {
	Code       string `json:"code" yaml:"code"`
	Name       string `json:"name" yaml:"name"`
	PnnsGroup  string `json:"pnns" yaml:"pnns"`
	NutriScore string `json:"score" yaml:"score"`
	Brand      string `json:"brand" yaml:"brand"`
	Categories string `json:"categories" yaml:"categories"`
}

type TableState struct {
	Status      Status    `json:"status" yaml:"status"`
	Loading     bool      `json:"loading" yaml:"loading"`
	Error       string    `json:"error,omitempty" yaml:"error,omitempty"`
	Filter      string    `json:"filter,omitempty" yaml:"filter,omitempty"`
	SortBy      SortField `json:"sort_by" yaml:"sort_by"`
	Order       Order     `json:"order" yaml:"order"`
	Page        int       `json:"page" yaml:"page"`
	RowsPerPage int       `json:"rows_per_page" yaml:"rows_per_page"`
	// Total is the number of rows left after filtering.
	Total int   `json:"total" yaml:"total"`
	Rows  []Row `json:"rows" yaml:"rows"`
	// NotFound is set when a non-empty filter matches nothing.
	NotFound bool `json:"not_found" yaml:"not_found"`
}

// Table fetches the table rows once; filtering, sorting and paging are local.
type Table struct {
	src    Source
	loader Loader[[]model.Food]
	fold   cases.Caser

	mu          sync.Mutex
	filter      string
	sortBy      SortField
	order       Order
	page        int
	rowsPerPage int
}

func NewTable(src Source) *Table {
	return &Table{
		src:         src,
		fold:        cases.Fold(),
		sortBy:      SortByName,
		order:       OrderAsc,
		rowsPerPage: RowsPerPageOptions[0],
	}
}

// Load fetches the rows. It is the only operation that hits the network.
func (t *Table) Load(ctx context.Context) TableState {
	t.loader.Load(ctx, "", "Failed to load foods", t.src.ListTableFoods)
	return t.State()
}

// SetFilter filters on the product name and goes back to the first page.
func (t *Table) SetFilter(filter string) TableState {
	t.mu.Lock()
	t.filter = filter
	t.page = 0
	t.mu.Unlock()

	return t.State()
}

// Sort orders by field, ascending, or flips the direction when field is
// already the sort column.
func (t *Table) Sort(field SortField) (TableState, error) {
	if err := field.Validate(); err != nil {
		return TableState{}, err
	}

	t.mu.Lock()
	if t.sortBy == field && t.order == OrderAsc {
		t.order = OrderDesc
	} else {
		t.order = OrderAsc
	}
	t.sortBy = field
	t.mu.Unlock()

	return t.State(), nil
}

// SetOrder sets the sort column and direction explicitly.
func (t *Table) SetOrder(field SortField, order Order) (TableState, error) {
	if err := field.Validate(); err != nil {
		return TableState{}, err
	}
	if err := order.Validate(); err != nil {
		return TableState{}, err
	}

	t.mu.Lock()
	t.sortBy = field
	t.order = order
	t.mu.Unlock()

	return t.State(), nil
}

// SetPage selects a zero based page. Pages past the end render empty.
func (t *Table) SetPage(page int) (TableState, error) {
	if page < 0 {
		return TableState{}, fmt.Errorf("page must not be negative, got %d", page)
	}

	t.mu.Lock()
	t.page = page
	t.mu.Unlock()

	return t.State(), nil
}

// SetRowsPerPage changes the page size and goes back to the first page.
func (t *Table) SetRowsPerPage(n int) (TableState, error) {
	if !slices.Contains(RowsPerPageOptions, n) {
		return TableState{}, fmt.Errorf("rows per page must be one of %v, got %d", RowsPerPageOptions, n)
	}

	t.mu.Lock()
	t.rowsPerPage = n
	t.page = 0
	t.mu.Unlock()

	return t.State(), nil
}

func (t *Table) State() TableState {
	snap := t.loader.Snapshot()

	t.mu.Lock()
	defer t.mu.Unlock()

	st := TableState{
		Status:      snap.Status,
		Loading:     snap.Loading,
		Error:       snap.Error,
		Filter:      t.filter,
		SortBy:      t.sortBy,
		Order:       t.order,
		Page:        t.page,
		RowsPerPage: t.rowsPerPage,
		Rows:        []Row{},
	}

	filtered := t.apply(snap.Data)
	st.Total = len(filtered)
	st.NotFound = len(filtered) == 0 && t.filter != ""

	start := min(t.page*t.rowsPerPage, len(filtered))
	end := min(start+t.rowsPerPage, len(filtered))
	for _, f := range filtered[start:end] {
		st.Rows = append(st.Rows, toRow(f))
	}

	return st
}

func (t *Table) apply(foods []model.Food) []model.Food {
	out := make([]model.Food, 0, len(foods))

	needle := t.fold.String(t.filter)
	for _, f := range foods {
		if needle != "" && !strings.Contains(t.fold.String(ptr.ValueOr(f.ProductName, "")), needle) {
			continue
		}
		out = append(out, f)
	}

	slices.SortStableFunc(out, func(a, b model.Food) int {
		if c := t.compare(a, b); c != 0 {
			return c
		}
		return cmp.Compare(a.Code, b.Code)
	})

	return out
}

// compare orders by the sort column; rows without a value go last in both
// directions.
func (t *Table) compare(a, b model.Food) int {
	var c int
	switch t.sortBy {
	case SortByNutriScore:
		c = compareMissingLast(a.NutriscoreScore, b.NutriscoreScore, t.order, cmp.Compare[int])
	default:
		get := stringField(t.sortBy)
		c = compareMissingLast(get(a), get(b), t.order, func(x, y string) int {
			return cmp.Compare(t.fold.String(x), t.fold.String(y))
		})
	}
	return c
}

func compareMissingLast[T any](a, b *T, order Order, compare func(T, T) int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}

	c := compare(*a, *b)
	if order == OrderDesc {
		return -c
	}
	return c
}

func stringField(field SortField) func(model.Food) *string {
	return func(f model.Food) *string {
		var v *string
		switch field {
		case SortByPnnsGroup:
			v = f.PnnsGroups1
		case SortByBrand:
			v = f.Brands
		case SortByCategories:
			v = f.Categories
		default:
			v = f.ProductName
		}
		if v == nil || *v == "" {
			return nil
		}
		return v
	}
}

func toRow(f model.Food) Row {
	r := Row{
		Code:       f.Code,
		Name:       orNA(f.ProductName),
		PnnsGroup:  orNA(f.PnnsGroups1),
		NutriScore: NotAvailable,
		Brand:      orNA(f.Brands),
		Categories: orNA(f.Categories),
	}
	if f.NutriscoreScore != nil {
		r.NutriScore = strconv.Itoa(*f.NutriscoreScore)
	}
	return r
}

func orNA(s *string) string {
	if s == nil || *s == "" {
		return NotAvailable
	}
	return *s
}
