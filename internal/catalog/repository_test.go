package catalog

import "testing"

func seedRepo() *InMemoryRepository {
	return NewInMemoryRepository([]Product{
		{ID: 1, Name: LocalizedText{En: "Black Shirt"}, Price: 25000, Stock: 12},
		{ID: 2, Name: LocalizedText{En: "Denim Jeans"}, Price: 35000, Stock: 8},
	})
}

func TestUpsertInsertsAndReplaces(t *testing.T) {
	r := seedRepo()

	// unseen id inserts
	if _, err := r.Upsert(Product{ID: 3, Name: LocalizedText{En: "Beanie"}, Price: 8000, Stock: 20}); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if len(r.List()) != 3 {
		t.Fatalf("expected 3 products, got %d", len(r.List()))
	}

	// seen id replaces wholesale, no field merge
	if _, err := r.Upsert(Product{ID: 1, Name: LocalizedText{En: "Renamed"}}); err != nil {
		t.Fatalf("replace failed: %v", err)
	}
	p, err := r.GetByID(1)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if p.Name.En != "Renamed" || p.Price != 0 || p.Stock != 0 {
		t.Fatalf("expected wholesale replacement, got %+v", p)
	}
}

func TestRemoveUnconditional(t *testing.T) {
	r := seedRepo()
	if err := r.Remove(2); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if _, err := r.GetByID(2); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound after remove, got %v", err)
	}
	if err := r.Remove(2); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for missing id, got %v", err)
	}
}

func TestAdjustStock(t *testing.T) {
	r := seedRepo()
	p, err := r.AdjustStock(1, -5)
	if err != nil {
		t.Fatalf("adjust failed: %v", err)
	}
	if p.Stock != 7 {
		t.Fatalf("expected stock 7, got %d", p.Stock)
	}
	if _, err := r.AdjustStock(99, 1); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListByIDs(t *testing.T) {
	r := seedRepo()
	got, err := r.ListByIDs([]int{2, 99})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("unexpected result %+v", got)
	}

	empty, err := r.ListByIDs(nil)
	if err != nil || len(empty) != 0 {
		t.Fatalf("expected empty result for empty ids, got %v %v", empty, err)
	}
}

func TestListReturnsCopy(t *testing.T) {
	r := seedRepo()
	out := r.List()
	out[0].Stock = 999
	p, _ := r.GetByID(out[0].ID)
	if p.Stock == 999 {
		t.Fatalf("List must return a copy, storage was mutated")
	}
}
