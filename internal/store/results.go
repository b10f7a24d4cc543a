package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendResult(ctx context.Context, data ResultRecordData) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO session_results
			(session_id, subject, topic, level, score, total, percentage, tier)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		data.SessionID, data.Subject, data.Topic, data.Level,
		data.Score, data.Total, data.Percentage, data.Tier,
	)
	if err != nil {
		return fmt.Errorf("append result: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentResults(ctx context.Context, limit int) ([]ResultRecord, error) {
	if limit <= 0 {
		limit = defaultQueryLimit
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, timestamp, session_id, subject, topic, level,
			score, total, percentage, tier
		 FROM session_results ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	var records []ResultRecord
	for rows.Next() {
		var rec ResultRecord
		err := rows.Scan(
			&rec.ID, &rec.Timestamp, &rec.SessionID,
			&rec.Subject, &rec.Topic, &rec.Level,
			&rec.Score, &rec.Total, &rec.Percentage, &rec.Tier,
		)
		if err != nil {
			return nil, fmt.Errorf("scan result row: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
