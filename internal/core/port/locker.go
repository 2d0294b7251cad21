package port

import "context"

type UnlockFn func()

//go:generate mockgen -source=locker.go -destination=mock/locker.go -package=mock
type Locker interface {
	// Lock blocks until key is held or ctx is done.
	Lock(ctx context.Context, key string) (UnlockFn, error)
}
