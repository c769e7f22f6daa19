package catalog

import (
	"github.com/asaskevich/EventBus"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Service implements the catalog operations for products, categories and
// tags. Every mutating operation runs as a single database transaction; the
// store's transactional guarantees are the only concurrency control.
type Service struct {
	db  *gorm.DB
	bus EventBus.Bus
}

// NewService creates a catalog service. bus may be nil when no subscriber
// cares about change events (tests).
func NewService(db *gorm.DB, bus EventBus.Bus) *Service {
	return &Service{db: db, bus: bus}
}

// inTx runs fn inside one transaction. Caller-fault and not-found errors
// pass through unchanged; anything else is surfaced as a TransactionError
// after the rollback.
func (s *Service) inTx(op string, tx *gorm.DB, fn func(tx *gorm.DB) error) error {
	err := tx.Transaction(fn)
	if err == nil {
		return nil
	}
	var ve *ValidationError
	var nfe *NotFoundError
	if errors.As(err, &ve) || errors.As(err, &nfe) {
		return err
	}
	return &TransactionError{Op: op, Err: err}
}
