package wakelock

import "github.com/bnema/waketrace/internal/application/port"

// PendingTimers reports the timed releases still scheduled on lock.
func PendingTimers(lock port.PlatformWakeLock) int {
	return lock.(*platformLock).pendingTimers()
}

var RequestAlreadyGone = requestAlreadyGone
