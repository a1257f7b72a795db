package transaction

import "time"

type ServiceInterface interface {
	Create(tx *Transaction, userID string) error
	ListByUser(userID string) []*Transaction
}

type Service struct {
	Repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repo: repo}
}

// Create stamps the authenticated owner onto the transaction. The identity
// comes from the session middleware and is trusted as-is.
func (s *Service) Create(tx *Transaction, userID string) error {
	if tx.Type != TypeIncome && tx.Type != TypeExpense {
		return ErrInvalidTransaction
	}
	if tx.Amount <= 0 || tx.Category == "" {
		return ErrInvalidTransaction
	}

	tx.UserID = userID
	if tx.Date.IsZero() {
		tx.Date = time.Now().UTC()
	}
	tx.CreatedAt = time.Now().UTC()

	return s.Repo.Create(tx)
}

func (s *Service) ListByUser(userID string) []*Transaction {
	txs := s.Repo.GetByUser(userID)
	if txs == nil {
		txs = make([]*Transaction, 0)
	}
	return txs
}
