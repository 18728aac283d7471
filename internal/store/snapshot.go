package store

import (
	"context"
	"fmt"
	"time"

	"github.com/prasadg/medprep/ent"
	"github.com/prasadg/medprep/ent/snapshot"
)

// snapshotRepo implements SnapshotRepo using the ent client.
type snapshotRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *snapshotRepo) Save(ctx context.Context, snap *Snapshot) error {
	seqNum := snap.Sequence
	if seqNum == 0 {
		next, err := r.seq.Next(ctx)
		if err != nil {
			return fmt.Errorf("next sequence: %w", err)
		}
		seqNum = next
	}
	ts := snap.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	_, err := r.client.Snapshot.Create().
		SetSessionID(snap.SessionID).
		SetSequence(seqNum).
		SetTimestamp(ts).
		SetData(snap.Data).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context) (*Snapshot, error) {
	s, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldTimestamp)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}
	return &Snapshot{
		ID:        s.ID,
		SessionID: s.SessionID,
		Sequence:  s.Sequence,
		Timestamp: s.Timestamp,
		Data:      s.Data,
	}, nil
}

func (r *snapshotRepo) Prune(ctx context.Context, keep int) error {
	// Find the threshold: the timestamp of the snapshot just past the keep window.
	snapshots, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldTimestamp)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	if len(snapshots) == 0 {
		return nil // fewer than keep snapshots exist
	}

	threshold := snapshots[0].Timestamp
	_, err = r.client.Snapshot.Delete().
		Where(snapshot.TimestampLTE(threshold)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}
