package matching

// Repository persists learned merchant-to-category mappings.
type Repository interface {
	FindMatch(merchant string) (string, error)
	CreateMapping(merchant, category string) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Suggest tries to find a learned category for the given merchant
// name. Returns empty string if no match found.
func (s *Service) Suggest(merchant string) (string, error) {
	return s.repo.FindMatch(merchant)
}

// Learn remembers a merchant-to-category mapping so the next import
// categorizes the merchant automatically.
func (s *Service) Learn(merchant, category string) error {
	return s.repo.CreateMapping(merchant, category)
}
