package repository

import "time"

// DuplicateEntry tracks the last normalized text a sender posted in a group
// and how many times in a row it has been seen inside the window.
type DuplicateEntry struct {
	Text        string
	Occurrences int
	LastSeenAt  time.Time
}
