package session

import "time"

// Penalty computes the overstay surcharge for a session that exits after
// its backing reservation's end time. The charge accrues continuously per
// hour of overstay; it is not rounded up to whole hours. Subscriptions
// carry no end-of-slot concept and never incur a penalty.
func Penalty(exitTime, reservationEnd time.Time, ratePerHour float64) float64 {
	if !exitTime.After(reservationEnd) {
		return 0
	}
	overstaySeconds := exitTime.Unix() - reservationEnd.Unix()
	return float64(overstaySeconds) / 3600.0 * ratePerHour
}
