package utility

import (
	"fmt"
	"time"
)

// GoProtect runs f and swallows any panic so a helper goroutine cannot take
// the process down.
func GoProtect(f func()) {
	defer func() {
		if err := recover(); err != nil {
			fmt.Printf("recovered from panic: %v\n", err)
		}
	}()

	f()
}

// UnixMilli returns the millisecond timestamp of t.
func UnixMilli(t time.Time) int64 {
	return t.Round(time.Millisecond).UnixNano() / (int64(time.Millisecond) / int64(time.Nanosecond))
}

// CurrentTimeInMilli returns the current time in milliseconds. Every
// createdAt/updatedAt in the database uses this representation.
func CurrentTimeInMilli() int64 {
	return UnixMilli(time.Now())
}
