package order

// PersistFunc is invoked after every committed ledger append; snapshot mode
// rewrites the orders blob, Postgres mode passes nil.
type PersistFunc func()

type Service struct {
	repo    Repository
	persist PersistFunc
}

func NewService(repo Repository, persist PersistFunc) *Service {
	return &Service{repo: repo, persist: persist}
}

func (s *Service) Append(ord Order) error {
	if err := s.repo.Append(ord); err != nil {
		return err
	}
	if s.persist != nil {
		s.persist()
	}
	return nil
}

func (s *Service) All() []Order {
	return s.repo.All()
}

func (s *Service) GetByID(id string) (Order, error) {
	return s.repo.GetByID(id)
}

// NewUniqueID generates an order id and regenerates on the (unlikely)
// collision with an existing ledger entry.
func (s *Service) NewUniqueID() string {
	id := NewID()
	for s.repo.Exists(id) {
		id = NewID()
	}
	return id
}

// TotalRevenue sums the totals of every order in the ledger.
func (s *Service) TotalRevenue() int {
	sum := 0
	for _, ord := range s.repo.All() {
		sum += ord.Total
	}
	return sum
}

// Count returns the number of orders in the ledger.
func (s *Service) Count() int {
	return len(s.repo.All())
}
