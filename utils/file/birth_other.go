//go:build !linux

package file

import "time"

func birthTime(string) (time.Time, bool) {
	return time.Time{}, false
}
