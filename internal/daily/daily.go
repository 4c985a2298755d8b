// internal/daily/daily.go
//
// Daily board seeding. Every player who opts into the daily game on the
// same date (UTC) gets the same deal: the seed is derived from the date
// with a keyed hash, so boards are stable per day, unpredictable across
// days, and need no server or shared state.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Seed returns the deterministic deal seed for a date: the first 8 bytes of
// HMAC-SHA256(salt, YYYY-MM-DD). Changing the salt reshuffles every day's
// board at once.
func Seed(date time.Time, salt string) int64 {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	return int64(binary.BigEndian.Uint64(sum[:8]))
}
