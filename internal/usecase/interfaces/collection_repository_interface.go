package interfaces

import (
	"context"
	"mixto_gestao/internal/domain/entities"
)

// ICollectionRepository loads and saves whole collections.
//
// Every mutation rewrites the full collection it touched; there is no
// partial update.
type ICollectionRepository interface {
	Load(ctx context.Context) (entities.Dataset, error)
	Save(ctx context.Context, collection entities.Collection, data entities.Dataset) error
}
