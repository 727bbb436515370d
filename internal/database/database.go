package database

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/example/xoibasu/internal/models"
)

// createdAtLayout matches the stored timestamp format (UTC, millisecond
// precision), e.g. 2026-08-31T09:15:04.123Z.
const createdAtLayout = "2006-01-02T15:04:05.000Z07:00"

// document is the full on-disk database: one order counter plus every order
// ever taken, in insertion order.
type document struct {
	NextOrderID int64          `json:"nextOrderId"`
	Orders      []models.Order `json:"orders"`
}

// Store persists orders as a single JSON document. Every mutation reloads the
// document, changes it in memory and rewrites the whole file. There is no
// locking: concurrent writers race and the last one wins, which is acceptable
// for single-shop volume.
type Store struct {
	path string
	now  func() time.Time
}

// Open prepares a Store backed by the JSON document at path, creating an
// empty document on first run. Any other read or parse failure is returned
// and should be treated as fatal by the caller.
func Open(path string) (*Store, error) {
	s := &Store{path: path, now: time.Now}
	if _, err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() (*document, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		doc := &document{NextOrderID: 1, Orders: []models.Order{}}
		if err := s.save(doc); err != nil {
			return nil, err
		}
		return doc, nil
	}
	if err != nil {
		return nil, err
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	return &doc, nil
}

func (s *Store) save(doc *document) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o644)
}

// InsertOrder assigns the next id and the creation timestamp, appends the
// order and persists the document. Returns the assigned id.
func (s *Store) InsertOrder(order models.Order) (int64, error) {
	doc, err := s.load()
	if err != nil {
		return 0, err
	}

	order.ID = doc.NextOrderID
	order.CreatedAt = s.now().UTC().Format(createdAtLayout)
	doc.NextOrderID++
	doc.Orders = append(doc.Orders, order)

	if err := s.save(doc); err != nil {
		return 0, err
	}
	return order.ID, nil
}

// UpdateOrderStatus overwrites the status of the order with the given id.
// An unknown id is a silent no-op: nothing is written and no error returned.
func (s *Store) UpdateOrderStatus(id int64, status string) error {
	doc, err := s.load()
	if err != nil {
		return err
	}

	for i := range doc.Orders {
		if doc.Orders[i].ID == id {
			doc.Orders[i].Status = status
			return s.save(doc)
		}
	}
	return nil
}

// GetOrderByID returns the order with the given id, or nil if absent.
func (s *Store) GetOrderByID(id int64) (*models.Order, error) {
	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	for i := range doc.Orders {
		if doc.Orders[i].ID == id {
			o := doc.Orders[i]
			return &o, nil
		}
	}
	return nil, nil
}

// Filter restricts a listing or aggregation to a created_at range and/or a
// single status. Bounds that fail to parse are ignored; status "all" (or
// empty) disables the status filter.
type Filter struct {
	Start  string
	End    string
	Status string
}

func (f Filter) match(o models.Order) bool {
	created, createdOK := parseWhen(o.CreatedAt)

	if start, ok := parseWhen(f.Start); ok && createdOK && created.Before(start) {
		return false
	}
	if end, ok := parseWhen(f.End); ok && createdOK && created.After(end) {
		return false
	}
	if f.Status != "" && f.Status != "all" && o.Status != f.Status {
		return false
	}
	return true
}

// parseWhen accepts the stored timestamp format, RFC 3339, or a bare
// YYYY-MM-DD date.
func parseWhen(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func (s *Store) filtered(f Filter) ([]models.Order, error) {
	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	matched := make([]models.Order, 0, len(doc.Orders))
	for _, o := range doc.Orders {
		if f.match(o) {
			matched = append(matched, o)
		}
	}
	return matched, nil
}

// ListQuery selects a page of filtered orders.
type ListQuery struct {
	Filter
	Limit int
	Page  int
}

// ListResult is one page of orders plus paging metadata. Page is the
// resolved page after clamping into [1, Pages].
type ListResult struct {
	Items []models.Order
	Total int
	Page  int
	Pages int
}

// ListOrders filters, sorts newest-first and paginates. The requested page is
// clamped into the valid range, so asking past the end returns the last page.
func (s *Store) ListOrders(q ListQuery) (ListResult, error) {
	matched, err := s.filtered(q.Filter)
	if err != nil {
		return ListResult{}, err
	}

	sort.SliceStable(matched, func(i, j int) bool {
		a, _ := parseWhen(matched[i].CreatedAt)
		b, _ := parseWhen(matched[j].CreatedAt)
		return a.After(b)
	})

	limit := q.Limit
	if limit <= 0 {
		limit = 50
	}

	total := len(matched)
	pages := (total + limit - 1) / limit
	if pages < 1 {
		pages = 1
	}
	page := q.Page
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}

	offset := (page - 1) * limit
	end := offset + limit
	if offset > total {
		offset = total
	}
	if end > total {
		end = total
	}

	return ListResult{
		Items: matched[offset:end],
		Total: total,
		Page:  page,
		Pages: pages,
	}, nil
}
