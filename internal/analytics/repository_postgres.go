package analytics

import "database/sql"

// PostgresRepository keeps the tally in a single-row table.
type PostgresRepository struct {
	db *sql.DB
}

const (
	getAnalyticsQuery = `
		SELECT daily_visitors, total_visitors, last_visit_date
		FROM analytics
		WHERE id = 1
	`
	setAnalyticsQuery = `
		INSERT INTO analytics (id, daily_visitors, total_visitors, last_visit_date)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO UPDATE
		SET daily_visitors = EXCLUDED.daily_visitors,
			total_visitors = EXCLUDED.total_visitors,
			last_visit_date = EXCLUDED.last_visit_date
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get() Analytics {
	var a Analytics
	if err := r.db.QueryRow(getAnalyticsQuery).Scan(&a.DailyVisitors, &a.TotalVisitors, &a.LastVisitDate); err != nil {
		// no row yet: zero tally
		return Analytics{}
	}
	return a
}

func (r *PostgresRepository) Set(a Analytics) error {
	_, err := r.db.Exec(setAnalyticsQuery, a.DailyVisitors, a.TotalVisitors, a.LastVisitDate)
	return err
}
