package models

import "testing"

func TestSeed(t *testing.T) {
	seed := Seed()
	want := []struct {
		id                     int64
		name, price, category string
	}{
		{1, `"Cappuccino"`, "109", `"coffee"`},
		{2, `"Latte"`, "119", `"coffee"`},
		{3, `"Espresso"`, "60", `"coffee"`},
		{4, `"Tea"`, "40", `"tea"`},
		{5, `"Dessert"`, "70", `"dessert"`},
	}
	if len(seed) != len(want) {
		t.Fatalf("expected %d seed items, got %d", len(want), len(seed))
	}
	for i, w := range want {
		got := seed[i]
		if got.ID != w.id || string(got.Name) != w.name || string(got.Price) != w.price ||
			string(got.Category) != w.category || string(got.Available) != "true" {
			t.Errorf("seed[%d]: got %+v, want %+v", i, got, w)
		}
	}
}

func TestSeed_ReturnsFreshCopy(t *testing.T) {
	a := Seed()
	a[0].Name[1] = 'X'
	if b := Seed(); string(b[0].Name) != `"Cappuccino"` {
		t.Fatalf("seed shared state between calls: %s", b[0].Name)
	}
}

func TestIndexOf(t *testing.T) {
	items := Seed()
	if got := IndexOf(items, 4); got != 3 {
		t.Fatalf("expected index 3, got %d", got)
	}
	if got := IndexOf(items, 99); got != -1 {
		t.Fatalf("expected -1, got %d", got)
	}
}

func TestMaxID(t *testing.T) {
	if got := MaxID(nil); got != 0 {
		t.Fatalf("expected 0 for empty menu, got %d", got)
	}
	items := append(Seed(), MenuItem{ID: 1700000000000})
	if got := MaxID(items); got != 1700000000000 {
		t.Fatalf("unexpected max id %d", got)
	}
}

func TestWithout(t *testing.T) {
	items := Seed()
	out := Without(items, 2)
	if len(out) != 4 {
		t.Fatalf("expected 4 items, got %d", len(out))
	}
	for i, id := range []int64{1, 3, 4, 5} {
		if out[i].ID != id {
			t.Fatalf("order not preserved: %v", out)
		}
	}
	if same := Without(items, 99); len(same) != len(items) {
		t.Fatalf("missing id must be a no-op, got %d items", len(same))
	}
}
