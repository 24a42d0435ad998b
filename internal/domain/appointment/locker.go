package appointment

import (
	"context"
	"time"
)

//go:generate mockgen -source=locker.go -destination=mock/slot_locker.go -package=mock

// SlotLocker serializes bookings of one slot key across API instances.
type SlotLocker interface {
	// Lock returns ErrSlotLocked when another holder owns key.
	Lock(ctx context.Context, key string, ttl time.Duration) (unlock func(context.Context) error, err error)
}

func SlotKey(salonID, date, hm string) string {
	return "slot:" + salonID + ":" + date + ":" + hm
}
