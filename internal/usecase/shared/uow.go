package shared

import (
	"context"
	"time"

	"flexin/internal/domain/booking"
	"flexin/internal/domain/settings"
	"flexin/internal/domain/swap"
	"flexin/internal/domain/user"
	"flexin/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinSerializable: Serializable transaction for capacity-sensitive writes
	WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Swaps() SwapRepository
	Settings() SettingsRepository
	Users() UserRepository
	DB() db.DBTX
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*booking.Booking, error)
	FindActiveByUserAndDayForUpdate(ctx context.Context, tx db.DBTX, userID uuid.UUID, day booking.Day) (*booking.Booking, error)
	CountActiveByDay(ctx context.Context, tx db.DBTX, day booking.Day) (int, error)
	ExistsActiveByUserAndDay(ctx context.Context, tx db.DBTX, userID uuid.UUID, day booking.Day) (bool, error)
	CountConfirmedInRange(ctx context.Context, tx db.DBTX, userID uuid.UUID, from, to booking.Day) (int, error)
	Save(ctx context.Context, tx db.DBTX, b *booking.Booking) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type SwapRepository interface {
	Create(ctx context.Context, tx db.DBTX, req *swap.Request) (uuid.UUID, error)
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*swap.Request, error)
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*swap.Request, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, req *swap.Request) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type SettingsRepository interface {
	Get(ctx context.Context, tx db.DBTX) (settings.AppSettings, error)
	Update(ctx context.Context, tx db.DBTX, s settings.AppSettings) error
	IsDayBlocked(ctx context.Context, tx db.DBTX, day booking.Day) (bool, error)
	BlockDate(ctx context.Context, tx db.DBTX, day booking.Day) error
	UnblockDate(ctx context.Context, tx db.DBTX, day booking.Day) error
	DeactivateAnnouncements(ctx context.Context, tx db.DBTX) error
	InsertAnnouncement(ctx context.Context, tx db.DBTX, message string) (uuid.UUID, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error)
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, tx db.DBTX, email string) (*user.User, error)
	SetEmailVerified(ctx context.Context, tx db.DBTX, id uuid.UUID, at time.Time) error
	UpdatePassword(ctx context.Context, tx db.DBTX, id uuid.UUID, passwordHash string) error
	UpdateProfile(ctx context.Context, tx db.DBTX, id uuid.UUID, name string, departmentID *uuid.UUID, avatarURL *string) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}
