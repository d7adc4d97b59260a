package orders

import (
	"context"
	"log"
	"time"

	"mandi/rdx"
)

// CommitLock serializes the commit step of checkout per user, so two
// concurrent checkouts for the same cart cannot both snapshot-and-insert.
type CommitLock interface {
	// Acquire returns false when another checkout already holds the lock.
	Acquire(ctx context.Context, userID string) (bool, error)
	Release(userID string)
}

// checkoutLockTTL bounds how long a crashed checkout can wedge a user;
// well past the confirmation delay plus a Mongo insert.
const checkoutLockTTL = 30 * time.Second

// RedisCommitLock implements CommitLock on a per-user SetNX key, the same
// scheme the payment flows use for wallet debits.
type RedisCommitLock struct{}

func (RedisCommitLock) Acquire(_ context.Context, userID string) (bool, error) {
	return rdx.RdxSetNX("checkout_lock:"+userID, "1", checkoutLockTTL)
}

func (RedisCommitLock) Release(userID string) {
	if err := rdx.RdxDel("checkout_lock:" + userID); err != nil {
		log.Println("checkout lock release error:", err)
	}
}
