package repository

import (
	"context"
	"errors"

	"github.com/locauto/locauto-go/internal/model"
)

var (
	ErrVehicleNotFound  = errors.New("vehicle not found")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrStoreCorrupt     = errors.New("store data is corrupt")
	ErrStoreWrite       = errors.New("store write failed")
)

// VehicleStore is the persistence contract shared by the file-backed and
// MySQL-backed stores. Create assigns the new record's ID, Update replaces
// the stored record with the same ID wholesale, and Delete of an absent ID
// is a no-op success.
type VehicleStore interface {
	List(ctx context.Context) ([]model.Vehicle, error)
	Get(ctx context.Context, id int64) (*model.Vehicle, error)
	Create(ctx context.Context, v *model.Vehicle) error
	Update(ctx context.Context, v *model.Vehicle) error
	Delete(ctx context.Context, id int64) error
}
