package storage

import (
	"context"

	"ewintr.nl/ytchecklist/model"
)

type LookupRepository interface {
	Save(ctx context.Context, lookup *model.Lookup) error
	Recent(ctx context.Context, limit int) ([]*model.Lookup, error)
}
