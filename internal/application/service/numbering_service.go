package service

import (
	"context"
	"fmt"
	"time"

	"github.com/restoflow/restoflow-api/internal/domain/repository"
)

// Document number prefixes
const (
	PrefixOrder  = "ORD"
	PrefixReturn = "RET"
)

// NumberingService issues human-readable document numbers of the form
// PREFIX-YYYYMMDD-NNNN. Sequences restart at 1 each day per prefix.
type NumberingService struct {
	now func() time.Time
}

// NewNumberingService creates a new numbering service
func NewNumberingService() *NumberingService {
	return &NumberingService{now: time.Now}
}

// Next issues the next number for prefix. It must run inside the same
// transaction as the insert that uses the number: the counter bump is
// the serialization point, and a rollback returns the value to the gap.
func (s *NumberingService) Next(ctx context.Context, r repository.Repositories, prefix string) (string, error) {
	day := s.now().Format("20060102")
	value, err := r.Counters().Next(ctx, prefix, day)
	if err != nil {
		return "", err
	}
	width := 4
	if prefix == PrefixReturn {
		width = 3
	}
	return fmt.Sprintf("%s-%s-%0*d", prefix, day, width, value), nil
}
