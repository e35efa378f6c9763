package catalog

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPostgresList(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows([]string{"product_id", "name", "description", "price", "category", "image", "stock"}).
		AddRow(1, []byte(`{"ku":"کراس","ar":"قميص","en":"Shirt"}`), []byte(`{"ku":"","ar":"","en":"A shirt"}`), 25000, "Clothing", "/p/1.jpg", 12).
		AddRow(2, []byte(`{"ku":"","ar":"","en":"Jeans"}`), []byte(`{"ku":"","ar":"","en":""}`), 35000, "Clothing", "/p/2.jpg", 8)
	mock.ExpectQuery("SELECT product_id, name, description").WillReturnRows(rows)

	all := repo.List()
	if len(all) != 2 {
		t.Fatalf("expected 2 products, got %d", len(all))
	}
	if all[0].Name.En != "Shirt" || all[0].Name.Ku != "کراس" {
		t.Fatalf("localized name not decoded: %+v", all[0].Name)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("FROM product").WithArgs(9).
		WillReturnRows(sqlmock.NewRows([]string{"product_id", "name", "description", "price", "category", "image", "stock"}))

	if _, err := repo.GetByID(9); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresAdjustStock(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows([]string{"product_id", "name", "description", "price", "category", "image", "stock"}).
		AddRow(5, []byte(`{"ku":"","ar":"","en":"Jacket"}`), []byte(`{"ku":"","ar":"","en":""}`), 85000, "Clothing", "", 1)
	mock.ExpectQuery("UPDATE product").WithArgs(-2, 5).WillReturnRows(rows)

	p, err := repo.AdjustStock(5, -2)
	if err != nil {
		t.Fatalf("adjust failed: %v", err)
	}
	if p.ID != 5 || p.Stock != 1 {
		t.Fatalf("unexpected product %+v", p)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresRemoveNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("DELETE FROM product").WithArgs(7).WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Remove(7); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
