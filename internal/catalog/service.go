package catalog

// PersistFunc is invoked after every committed catalog mutation. In snapshot
// mode it rewrites the products blob; the Postgres repository persists on its
// own and main passes nil.
type PersistFunc func()

type Service struct {
	repo    Repository
	persist PersistFunc
}

func NewService(repo Repository, persist PersistFunc) *Service {
	return &Service{repo: repo, persist: persist}
}

func (s *Service) committed() {
	if s.persist != nil {
		s.persist()
	}
}

func (s *Service) List() []Product {
	return s.repo.List()
}

func (s *Service) GetByID(id int) (Product, error) {
	return s.repo.GetByID(id)
}

func (s *Service) ListByIDs(ids []int) ([]Product, error) {
	return s.repo.ListByIDs(ids)
}

func (s *Service) Upsert(p Product) (Product, error) {
	saved, err := s.repo.Upsert(p)
	if err != nil {
		return Product{}, err
	}
	s.committed()
	return saved, nil
}

func (s *Service) Remove(id int) error {
	if err := s.repo.Remove(id); err != nil {
		return err
	}
	s.committed()
	return nil
}

func (s *Service) AdjustStock(id int, delta int) (Product, error) {
	p, err := s.repo.AdjustStock(id, delta)
	if err != nil {
		return Product{}, err
	}
	s.committed()
	return p, nil
}

// ResetProducts replaces all products with the given list (seeding / dev).
func (s *Service) ResetProducts(products []Product) error {
	if err := s.repo.Reset(products); err != nil {
		return err
	}
	s.committed()
	return nil
}

// OutOfStock returns products with zero remaining stock.
func (s *Service) OutOfStock() []Product {
	out := make([]Product, 0)
	for _, p := range s.repo.List() {
		if p.Stock == 0 {
			out = append(out, p)
		}
	}
	return out
}

// LowStock returns products with stock between 1 and threshold inclusive.
func (s *Service) LowStock(threshold int) []Product {
	out := make([]Product, 0)
	for _, p := range s.repo.List() {
		if p.Stock > 0 && p.Stock <= threshold {
			out = append(out, p)
		}
	}
	return out
}
