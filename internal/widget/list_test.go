package widget

import (
	"testing"

	"github.com/idilsaglam/tada/internal/model"
)

func TestListAppendRemove(t *testing.T) {
	l := NewList()
	for _, id := range []model.ItemID{"a", "b", "c"} {
		l.Append(model.Item{ID: id, Title: string(id)})
	}
	if l.Len() != 3 {
		t.Fatalf("len = %d", l.Len())
	}
	if !l.Remove("b") {
		t.Fatal("remove b reported false")
	}
	if l.Remove("b") {
		t.Error("second remove of b should report false")
	}
	items := l.Items()
	if len(items) != 2 || items[0].ID != "a" || items[1].ID != "c" {
		t.Errorf("items = %+v", items)
	}

	l.Remove("a")
	l.Remove("c")
	if l.Len() != 0 || len(l.Items()) != 0 {
		t.Errorf("list should be empty, got %+v", l.Items())
	}

	// empty list accepts appends again
	l.Append(model.Item{ID: "d", Title: "d"})
	if items := l.Items(); len(items) != 1 || items[0].ID != "d" {
		t.Errorf("items = %+v", items)
	}
}

func TestListAppendSameIDReplaces(t *testing.T) {
	l := NewList()
	l.Append(model.Item{ID: "a", Title: "one"})
	l.Append(model.Item{ID: "b", Title: "two"})
	l.Append(model.Item{ID: "a", Title: "uno"})

	items := l.Items()
	if len(items) != 2 || items[0].Title != "uno" || items[1].ID != "b" {
		t.Errorf("items = %+v", items)
	}
}

func TestListGet(t *testing.T) {
	l := NewList()
	l.Append(model.Item{ID: "a", Title: "one"})
	if _, ok := l.Get("missing"); ok {
		t.Error("Get(missing) should report false")
	}
	if it, ok := l.Get("a"); !ok || it.Title != "one" {
		t.Errorf("Get(a) = %+v, %v", it, ok)
	}
}
