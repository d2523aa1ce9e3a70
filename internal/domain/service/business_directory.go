package service

import (
	"context"

	"salepoint/internal/domain/entity"
)

// BusinessDirectory is the opaque remote collaborator that vends the
// businesses the signed-in user may work in. This subsystem only reads
// from it; authentication against it happens elsewhere.
type BusinessDirectory interface {
	ListBusinesses(ctx context.Context) ([]*entity.Business, error)
}
