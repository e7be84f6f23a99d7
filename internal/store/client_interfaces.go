package store

import (
	"context"

	"github.com/tysonmwilliams-source/lineageweaverty-sub001/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalStore is the embedded on-device store. Every kind is an independent
// collection keyed by an int64 identity the store assigns on Add.
type LocalStore interface {
	// ListAll returns every record of kind ordered by identity.
	ListAll(ctx context.Context, kind models.Kind) ([]models.Record, error)
	// Add inserts payload and returns the newly assigned identity.
	Add(ctx context.Context, kind models.Kind, payload models.Payload) (int64, error)
	// Update shallow-merges patch into the stored payload.
	Update(ctx context.Context, kind models.Kind, id int64, patch models.Payload) error
	// Delete removes one record.
	Delete(ctx context.Context, kind models.Kind, id int64) error
	// DeleteAll removes every record of every kind.
	DeleteAll(ctx context.Context) error
	// Restore inserts records with their identities taken verbatim.
	Restore(ctx context.Context, kind models.Kind, records ...models.Record) error
	Close() error
}
