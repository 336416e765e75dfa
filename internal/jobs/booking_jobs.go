package jobs

import (
	"context"
	"time"

	"stayhaven-backend/internal/logger"
)

// CompletePastBookings transitions confirmed bookings whose stay has ended
// to COMPLETED. Runs daily from the scheduler.
func (jr *JobRunner) CompletePastBookings() {
	runWithRecovery("complete-past-bookings", jr.completePastBookings)
}

func (jr *JobRunner) completePastBookings() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	today := time.Now().UTC().Truncate(24 * time.Hour)

	rows, err := jr.db.QueryContext(ctx, `
		UPDATE bookings
		SET status = 'COMPLETED'
		WHERE status = 'CONFIRMED' AND end_date < $1
		RETURNING id, customer_id, listing_id, end_date`,
		today,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	var completed int
	for rows.Next() {
		var (
			id         int64
			customerID int64
			listingID  int64
			endDate    time.Time
		)
		if err := rows.Scan(&id, &customerID, &listingID, &endDate); err != nil {
			return err
		}
		completed++
		logger.Info("booking completed",
			"booking_id", id,
			"customer_id", customerID,
			"listing_id", listingID,
			"end_date", endDate.Format("2006-01-02"),
		)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	logger.Info("past bookings swept", "completed", completed)
	return nil
}
