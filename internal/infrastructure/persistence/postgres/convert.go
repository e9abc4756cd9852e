package postgres

import "time"

// Helpers de conversión entre epoch en segundos y time.Time.

func unixPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ts := t.Unix()
	return &ts
}

func timePtr(ts *int64) *time.Time {
	if ts == nil {
		return nil
	}
	t := time.Unix(*ts, 0).UTC()
	return &t
}
