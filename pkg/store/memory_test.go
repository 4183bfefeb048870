package store

import (
	"context"
	"testing"
	"time"

	"github.com/chartkit/chartkit/pkg/chart"
	"github.com/chartkit/chartkit/pkg/series"
)

func testChart(title string) Chart {
	s := series.Series{
		Title: title,
		Points: []series.Point{
			{Label: "a", Value: 1},
			{Label: "b", Value: 2},
		},
	}
	return NewChart(s, chart.Snapshot{Width: 100, Height: 100})
}

func TestNewChart(t *testing.T) {
	c := testChart("sales")

	if c.ID == "" {
		t.Error("no ID generated")
	}
	if c.Title != "sales" {
		t.Errorf("title = %q", c.Title)
	}
	if c.CreatedAt.IsZero() {
		t.Error("no timestamp")
	}

	// IDs are unique per chart.
	if testChart("sales").ID == c.ID {
		t.Error("duplicate IDs")
	}
}

func TestMemoryStoreCRUD(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close(ctx)

	c := testChart("sales")
	if err := s.Put(ctx, c); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := s.Get(ctx, c.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != c.ID || got.Title != "sales" || len(got.Series.Points) != 2 {
		t.Errorf("Get = %+v", got)
	}

	if err := s.Delete(ctx, c.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(ctx, c.ID); err != ErrNotFound {
		t.Errorf("Get after Delete = %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreNotFound(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	if _, err := s.Get(ctx, "missing"); err != ErrNotFound {
		t.Errorf("Get missing = %v, want ErrNotFound", err)
	}
	if err := s.Delete(ctx, "missing"); err != ErrNotFound {
		t.Errorf("Delete missing = %v, want ErrNotFound", err)
	}
}

func TestMemoryStorePutReplaces(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	c := testChart("v1")
	if err := s.Put(ctx, c); err != nil {
		t.Fatal(err)
	}

	c.Title = "v2"
	if err := s.Put(ctx, c); err != nil {
		t.Fatal(err)
	}

	got, err := s.Get(ctx, c.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Title != "v2" {
		t.Errorf("title = %q, want v2", got.Title)
	}

	all, _ := s.List(ctx)
	if len(all) != 1 {
		t.Errorf("list = %d entries, want 1", len(all))
	}
}

func TestMemoryStoreListOrder(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	older := testChart("older")
	older.CreatedAt = time.Now().Add(-time.Hour)
	newer := testChart("newer")

	if err := s.Put(ctx, older); err != nil {
		t.Fatal(err)
	}
	if err := s.Put(ctx, newer); err != nil {
		t.Fatal(err)
	}

	all, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("list = %d entries, want 2", len(all))
	}
	if all[0].Title != "newer" || all[1].Title != "older" {
		t.Errorf("order = %q, %q, want newest first", all[0].Title, all[1].Title)
	}
}
