package jobs

import (
	"log"

	"github.com/visheshkakadiya/hotel-management/database"
	"github.com/visheshkakadiya/hotel-management/services"
)

// CompleteElapsedStays is the cron backstop for the
// complete-past-bookings endpoint; dashboards also trigger the same
// transition on load.
func CompleteElapsedStays() {
	log.Println("Running job: CompleteElapsedStays...")

	count, err := services.CompletePastBookings(database.DB)
	if err != nil {
		log.Printf("Error completing past bookings: %v", err)
		return
	}

	if count == 0 {
		return
	}
	log.Printf("Marked %d booking(s) as completed.", count)
}
