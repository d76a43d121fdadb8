package contracts

import (
	"context"
	"time"
)

type LockerService interface {
	// TryLock attempts to acquire the key and returns whether it succeeded
	// along with the lock value needed to release it.
	TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error)
	Unlock(ctx context.Context, key, lockValue string) error
}
