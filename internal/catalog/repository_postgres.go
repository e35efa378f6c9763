package catalog

import (
	"database/sql"
	"encoding/json"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

const (
	listProductsQuery = `
		SELECT product_id, name, description, price, category, image, stock
		FROM product
		ORDER BY product_id
	`
	getProductByIDQuery = `
		SELECT product_id, name, description, price, category, image, stock
		FROM product
		WHERE product_id = $1
	`
	listProductsByIDsQuery = `
		SELECT product_id, name, description, price, category, image, stock
		FROM product
		WHERE product_id = ANY($1::int[])
		ORDER BY product_id
	`
	upsertProductQuery = `
		INSERT INTO product (product_id, name, description, price, category, image, stock)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		ON CONFLICT (product_id) DO UPDATE
		SET name = EXCLUDED.name,
			description = EXCLUDED.description,
			price = EXCLUDED.price,
			category = EXCLUDED.category,
			image = EXCLUDED.image,
			stock = EXCLUDED.stock
	`
	deleteProductQuery = `DELETE FROM product WHERE product_id = $1`
	adjustStockQuery   = `
		UPDATE product
		SET stock = stock + $1
		WHERE product_id = $2
		RETURNING product_id, name, description, price, category, image, stock
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanProduct(row rowScanner) (Product, error) {
	var (
		p        Product
		nameJSON []byte
		descJSON []byte
	)
	if err := row.Scan(&p.ID, &nameJSON, &descJSON, &p.Price, &p.Category, &p.Image, &p.Stock); err != nil {
		return Product{}, err
	}
	if err := json.Unmarshal(nameJSON, &p.Name); err != nil {
		return Product{}, err
	}
	if err := json.Unmarshal(descJSON, &p.Description); err != nil {
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) List() []Product {
	rows, err := r.db.Query(listProductsQuery)
	if err != nil {
		return []Product{}
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (r *PostgresRepository) GetByID(id int) (Product, error) {
	row := r.db.QueryRow(getProductByIDQuery, id)
	p, err := scanProduct(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Product{}, ErrNotFound
		}
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) ListByIDs(ids []int) ([]Product, error) {
	if len(ids) == 0 {
		return []Product{}, nil
	}
	rows, err := r.db.Query(listProductsByIDsQuery, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Product, 0, len(ids))
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *PostgresRepository) Upsert(p Product) (Product, error) {
	nameJSON, err := json.Marshal(p.Name)
	if err != nil {
		return Product{}, err
	}
	descJSON, err := json.Marshal(p.Description)
	if err != nil {
		return Product{}, err
	}
	if _, err := r.db.Exec(upsertProductQuery, p.ID, nameJSON, descJSON, p.Price, p.Category, p.Image, p.Stock); err != nil {
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) Remove(id int) error {
	res, err := r.db.Exec(deleteProductQuery, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) AdjustStock(id int, delta int) (Product, error) {
	row := r.db.QueryRow(adjustStockQuery, delta, id)
	p, err := scanProduct(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Product{}, ErrNotFound
		}
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) Reset(products []Product) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM product`); err != nil {
		return err
	}
	for _, p := range products {
		nameJSON, err := json.Marshal(p.Name)
		if err != nil {
			return err
		}
		descJSON, err := json.Marshal(p.Description)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(upsertProductQuery, p.ID, nameJSON, descJSON, p.Price, p.Category, p.Image, p.Stock); err != nil {
			return err
		}
	}
	return tx.Commit()
}
