package store

import (
	"context"
	"fmt"

	"github.com/prasadg/medprep/ent"
	"github.com/prasadg/medprep/ent/answerevent"
)

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetQuestionID(data.QuestionID).
		SetSpecialtyID(data.SpecialtyID).
		SetSelectedOption(data.SelectedOption).
		SetCorrectOption(data.CorrectOption).
		SetCorrect(data.Correct).
		SetTimeMs(data.TimeMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) SpecialtyAccuracy(ctx context.Context, specialtyID string) (float64, error) {
	events, err := r.client.AnswerEvent.Query().
		Where(answerevent.SpecialtyID(specialtyID)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query specialty accuracy: %w", err)
	}
	if len(events) == 0 {
		return 0, nil
	}

	correct := 0
	for _, e := range events {
		if e.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(events)), nil
}

func (r *eventRepo) Stats(ctx context.Context) ([]SpecialtyStats, error) {
	events, err := r.client.AnswerEvent.Query().
		Order(ent.Asc(answerevent.FieldSpecialtyID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}

	byID := make(map[string]*SpecialtyStats)
	var order []string
	for _, e := range events {
		st := byID[e.SpecialtyID]
		if st == nil {
			st = &SpecialtyStats{SpecialtyID: e.SpecialtyID}
			byID[e.SpecialtyID] = st
			order = append(order, e.SpecialtyID)
		}
		st.Answered++
		if e.Correct {
			st.Correct++
		}
	}

	stats := make([]SpecialtyStats, 0, len(order))
	for _, id := range order {
		st := byID[id]
		if st.Answered > 0 {
			st.Accuracy = float64(st.Correct) / float64(st.Answered)
		}
		stats = append(stats, *st)
	}
	return stats, nil
}
