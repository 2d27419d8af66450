package db

import "errors"

// ErrStaleLockVersion is returned by CommitRun when the period's lock
// set changed after the snapshot was taken. The caller should rebuild
// the snapshot and retry.
var ErrStaleLockVersion = errors.New("lock set changed since snapshot was taken")

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = errors.New("record not found")
