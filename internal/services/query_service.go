package services

import (
	"context"
	"fmt"

	"github.com/franciscosanchezn/restaurant-manager/internal/models"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// QueryService forwards operator supplied SQL to the store unparsed
type QueryService interface {
	// Run executes query and returns every row it produced
	Run(ctx context.Context, query string) (models.QueryResult, error)
}

type queryService struct {
	db *gorm.DB
}

// NewQueryService creates a new instance of QueryService
func NewQueryService(db *gorm.DB) QueryService {
	return &queryService{db: db}
}

// Run wraps every store failure in ErrStoreRejected
func (s *queryService) Run(ctx context.Context, query string) (models.QueryResult, error) {
	var result models.QueryResult

	rows, err := s.db.WithContext(ctx).Raw(query).Rows()
	if err != nil {
		log.WithError(err).Warn("Raw query rejected")
		return result, fmt.Errorf("%w: %w", ErrStoreRejected, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return result, fmt.Errorf("%w: %w", ErrStoreRejected, err)
	}
	result.Columns = columns

	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return result, fmt.Errorf("%w: %w", ErrStoreRejected, err)
		}
		for i, value := range values {
			if raw, ok := value.([]byte); ok {
				values[i] = string(raw)
			}
		}
		result.Rows = append(result.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return result, fmt.Errorf("%w: %w", ErrStoreRejected, err)
	}

	log.WithField("rows", len(result.Rows)).Debug("Raw query executed")
	return result, nil
}
