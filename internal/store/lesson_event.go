package store

import (
	"context"
	"fmt"
	"time"
)

func (r *eventRepo) AppendLessonEvent(ctx context.Context, data LessonEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `INSERT INTO lesson_events
		(sequence, timestamp, kind, plan_id, title, category, session_number,
		 total_sessions, stage, difficulty, fallback, latency_ms, error_message)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		seqNum, time.Now().UnixNano(), data.Kind, data.PlanID, data.Title, data.Category,
		data.SessionNumber, data.TotalSessions, data.Stage, data.Difficulty,
		boolToInt(data.Fallback), data.LatencyMs, data.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("save lesson event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLessonEvents(ctx context.Context, planID string, opts QueryOpts) ([]LessonEventRecord, error) {
	var (
		extra []string
		args  []any
	)
	if planID != "" {
		extra = append(extra, "plan_id = ?")
		args = append(args, planID)
	}
	where, args := opts.whereClause(extra, args)

	rows, err := r.db.QueryContext(ctx, `SELECT id, sequence, timestamp, kind, plan_id, title,
		category, session_number, total_sessions, stage, difficulty, fallback, latency_ms,
		error_message FROM lesson_events`+where+" ORDER BY sequence DESC"+opts.limitClause(), args...)
	if err != nil {
		return nil, fmt.Errorf("query lesson events: %w", err)
	}
	defer rows.Close()

	var records []LessonEventRecord
	for rows.Next() {
		var (
			rec      LessonEventRecord
			ts       int64
			fallback int
		)
		if err := rows.Scan(&rec.ID, &rec.Sequence, &ts, &rec.Kind, &rec.PlanID, &rec.Title,
			&rec.Category, &rec.SessionNumber, &rec.TotalSessions, &rec.Stage, &rec.Difficulty,
			&fallback, &rec.LatencyMs, &rec.ErrorMessage); err != nil {
			return nil, fmt.Errorf("scan lesson event: %w", err)
		}
		rec.Timestamp = fromNanos(ts)
		rec.Fallback = fallback != 0
		records = append(records, rec)
	}
	return records, rows.Err()
}
