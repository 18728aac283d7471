package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendSubmission(ctx context.Context, data SubmissionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.SubmissionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetStatus(data.Status).
		SetScore(data.Score).
		SetPointsEarned(data.PointsEarned).
		SetXpEarned(data.XPEarned)

	if data.ErrorMessage != "" {
		builder = builder.SetErrorMessage(data.ErrorMessage)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save submission event: %w", err)
	}
	return nil
}
