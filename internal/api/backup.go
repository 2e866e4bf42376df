package api

import (
	"context"
	"time"

	"timekeep/internal/backup"
)

// ExportBackup serializes the store into a snapshot and returns the
// payload together with its conventional filename. In-progress sessions
// are excluded by the snapshot builder.
func (a *apiImpl) ExportBackup(ctx context.Context) ([]byte, string, error) {
	now := nowMillis()
	snapshot, err := backup.BuildSnapshot(ctx, a.repo, now)
	if err != nil {
		return nil, "", err
	}

	data, err := backup.Marshal(snapshot)
	if err != nil {
		return nil, "", err
	}
	return data, backup.Filename(time.UnixMilli(now).In(a.loc)), nil
}

// ImportBackup validates a snapshot payload and, only if it passes every
// check, replaces the store's entire contents with it.
func (a *apiImpl) ImportBackup(ctx context.Context, data []byte) error {
	snapshot, err := backup.Parse(data)
	if err != nil {
		return err
	}
	return backup.Restore(ctx, a.repo, snapshot)
}

// HasActiveSession reports whether a session is currently in progress.
func (a *apiImpl) HasActiveSession(ctx context.Context) (bool, error) {
	return backup.HasActiveSession(ctx, a.repo)
}

// HasAnyData reports whether the store holds any records at all.
func (a *apiImpl) HasAnyData(ctx context.Context) (bool, error) {
	return backup.HasAnyData(ctx, a.repo)
}
