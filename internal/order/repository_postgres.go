package order

import (
	"database/sql"
	"encoding/json"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	appendOrderQuery = `
		INSERT INTO orders (order_id, items, total, payment_method, order_date, customer_name, customer_address, customer_phone)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`
	listOrdersQuery = `
		SELECT order_id, items, total, payment_method, order_date, customer_name, customer_address, customer_phone
		FROM orders
		ORDER BY seq DESC
	`
	getOrderByIDQuery = `
		SELECT order_id, items, total, payment_method, order_date, customer_name, customer_address, customer_phone
		FROM orders
		WHERE order_id = $1
	`
	orderExistsQuery = `SELECT EXISTS(SELECT 1 FROM orders WHERE order_id = $1)`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type orderRowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row orderRowScanner) (Order, error) {
	var (
		ord       Order
		itemsJSON []byte
	)
	if err := row.Scan(&ord.ID, &itemsJSON, &ord.Total, &ord.PaymentMethod, &ord.Date,
		&ord.CustomerName, &ord.CustomerAddress, &ord.CustomerPhone); err != nil {
		return Order{}, err
	}
	if err := json.Unmarshal(itemsJSON, &ord.Items); err != nil {
		return Order{}, err
	}
	return ord, nil
}

func (r *PostgresRepository) Append(ord Order) error {
	itemsJSON, err := json.Marshal(ord.Items)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(appendOrderQuery, ord.ID, itemsJSON, ord.Total, string(ord.PaymentMethod),
		ord.Date, ord.CustomerName, ord.CustomerAddress, ord.CustomerPhone)
	return err
}

func (r *PostgresRepository) All() []Order {
	rows, err := r.db.Query(listOrdersQuery)
	if err != nil {
		return []Order{}
	}
	defer rows.Close()

	out := make([]Order, 0)
	for rows.Next() {
		ord, err := scanOrder(rows)
		if err != nil {
			continue
		}
		out = append(out, ord)
	}
	return out
}

func (r *PostgresRepository) GetByID(id string) (Order, error) {
	row := r.db.QueryRow(getOrderByIDQuery, id)
	ord, err := scanOrder(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Order{}, ErrNotFound
		}
		return Order{}, err
	}
	return ord, nil
}

func (r *PostgresRepository) Exists(id string) bool {
	var exists bool
	if err := r.db.QueryRow(orderExistsQuery, id).Scan(&exists); err != nil {
		return false
	}
	return exists
}

// Reset replaces the ledger; only snapshot restore uses it, historical orders
// are never rewritten through the API.
func (r *PostgresRepository) Reset(orders []Order) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM orders`); err != nil {
		return err
	}
	// the ledger is newest-first; insert oldest-first so seq keeps the order
	for i := len(orders) - 1; i >= 0; i-- {
		ord := orders[i]
		itemsJSON, err := json.Marshal(ord.Items)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(appendOrderQuery, ord.ID, itemsJSON, ord.Total, string(ord.PaymentMethod),
			ord.Date, ord.CustomerName, ord.CustomerAddress, ord.CustomerPhone); err != nil {
			return err
		}
	}
	return tx.Commit()
}
