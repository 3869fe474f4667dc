package jobs

import (
	"log"

	"github.com/visheshkakadiya/hotel-management/database"
	"github.com/visheshkakadiya/hotel-management/services"
)

func ReconcileRoomOccupancy() {
	log.Println("Running job: ReconcileRoomOccupancy...")

	rooms, err := services.ReconcileRoomStatuses(database.DB)
	if err != nil {
		log.Printf("Error reconciling room statuses: %v", err)
		return
	}

	log.Printf("Reconciled status for %d room(s).", len(rooms))
}
