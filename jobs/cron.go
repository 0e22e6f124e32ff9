package jobs

import (
	"log"
	"time"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// AttendanceRateRefresher recomputes windowed attendance rates
type AttendanceRateRefresher interface {
	RefreshAttendanceRates(m *melody.Melody) error
}

// CommissionSweeper backfills missing monthly commission rows for a month
type CommissionSweeper interface {
	SweepMonthlyCommissions(month string) error
}

var attendanceRateRefresher AttendanceRateRefresher
var commissionSweeper CommissionSweeper

func SetAttendanceRateRefresher(refresher AttendanceRateRefresher) {
	attendanceRateRefresher = refresher
}

func SetCommissionSweeper(sweeper CommissionSweeper) {
	commissionSweeper = sweeper
}

// InitCronJobs registers the nightly and monthly maintenance jobs and starts
// the scheduler
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Nightly at 02:00: refresh the trailing attendance rate of every
	// labourer with recent records
	_, err := c.AddFunc("0 2 * * *", func() {
		log.Printf("Running attendance rate refresh at: %v", time.Now())
		if attendanceRateRefresher == nil {
			log.Printf("Error: AttendanceRateRefresher has not been set")
			return
		}
		if err := attendanceRateRefresher.RefreshAttendanceRates(m); err != nil {
			log.Printf("Error refreshing attendance rates: %v", err)
		}
	})
	if err != nil {
		return err
	}

	// First of every month: backfill any monthly labour commission missed
	// during the previous month
	_, err = c.AddFunc("0 0 1 * *", func() {
		previousMonth := time.Now().AddDate(0, -1, 0).Format("2006-01")
		log.Printf("Running commission sweep for month: %s", previousMonth)
		if commissionSweeper == nil {
			log.Printf("Error: CommissionSweeper has not been set")
			return
		}
		if err := commissionSweeper.SweepMonthlyCommissions(previousMonth); err != nil {
			log.Printf("Error sweeping commissions for %s: %v", previousMonth, err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
