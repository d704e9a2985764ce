package shared

import (
	"context"
	"time"

	"pta-storefront/internal/domain/transaction"
	sqlc "pta-storefront/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

type Tx interface {
	Transactions() TransactionRepository
	Notifications() NotificationRepository
	Users() UserRepository
	DB() sqlc.DBTX
}

// UpsertResult reports what an upsert did. Applied is false when the row
// already carried the same status.
type UpsertResult struct {
	ID       uuid.UUID
	Applied  bool
	Inserted bool
}

type TransactionRepository interface {
	Upsert(ctx context.Context, tx sqlc.DBTX, rec *transaction.Record) (UpsertResult, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) (uuid.UUID, error)
	UpdateJobStatus(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, status string, lastError *string) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
	Create(ctx context.Context, tx sqlc.DBTX, params sqlc.CreateUserParams) (uuid.UUID, error)
}
