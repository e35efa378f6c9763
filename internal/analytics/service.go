package analytics

import (
	"time"

	"github.com/devanbrand/storefront-backend/internal/cart"
	"github.com/devanbrand/storefront-backend/internal/catalog"
	"github.com/devanbrand/storefront-backend/internal/order"
)

// PersistFunc is invoked after every committed counter update; snapshot mode
// rewrites the analytics blob, Postgres mode passes nil.
type PersistFunc func()

// Service applies session de-duplication on top of the bare counter and
// assembles the admin summary from the other domains.
type Service struct {
	repo     Repository
	sessions *cart.Sessions
	catalog  *catalog.Service
	orders   *order.Service

	lowStockThreshold int
	persist           PersistFunc
	now               func() time.Time
}

func NewService(repo Repository, sessions *cart.Sessions, catalogService *catalog.Service, orderService *order.Service, lowStockThreshold int, persist PersistFunc) *Service {
	return &Service{
		repo:              repo,
		sessions:          sessions,
		catalog:           catalogService,
		orders:            orderService,
		lowStockThreshold: lowStockThreshold,
		persist:           persist,
		now:               time.Now,
	}
}

// RecordVisit counts the session once per calendar day. Reloads within an
// already-counted session are invisible; this is a rough gauge, not an
// accurate unique-visitor count.
func (s *Service) RecordVisit(sessionID string) Analytics {
	today := s.now().Format(VisitDateLayout)
	if s.sessions.VisitFlag(sessionID, today) {
		return s.repo.Get()
	}

	updated := s.repo.Get().RecordVisit(today)
	s.repo.Set(updated)
	s.sessions.SetVisitFlag(sessionID, today)
	if s.persist != nil {
		s.persist()
	}
	return updated
}

func (s *Service) Current() Analytics {
	return s.repo.Get()
}

// Summary is the admin dashboard aggregate.
type Summary struct {
	TotalRevenue  int               `json:"totalRevenue"`
	TotalOrders   int               `json:"totalOrders"`
	DailyVisitors int               `json:"dailyVisitors"`
	TotalVisitors int               `json:"totalVisitors"`
	OutOfStock    []catalog.Product `json:"outOfStock"`
	LowStock      []catalog.Product `json:"lowStock"`
}

func (s *Service) Summary() Summary {
	a := s.repo.Get()
	return Summary{
		TotalRevenue:  s.orders.TotalRevenue(),
		TotalOrders:   s.orders.Count(),
		DailyVisitors: a.DailyVisitors,
		TotalVisitors: a.TotalVisitors,
		OutOfStock:    s.catalog.OutOfStock(),
		LowStock:      s.catalog.LowStock(s.lowStockThreshold),
	}
}
