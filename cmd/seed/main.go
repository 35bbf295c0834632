package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"roombook/internal/database"
	"roombook/internal/domain"
	"roombook/internal/modules/booking"
	"roombook/internal/repository"
)

// Loads the sample catalog and a couple of bookings, skipping anything that
// already exists.
func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "roombook.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed: ", err)
	}

	log.Println("Running migrations...")
	if err := repository.Migrate(db); err != nil {
		log.Fatal("migration failed: ", err)
	}

	ctx := context.Background()
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	bookingService := booking.NewService(bookingRepo, roomRepo)

	rooms, err := roomRepo.List(ctx)
	if err != nil {
		log.Fatal(err)
	}

	if len(rooms) == 0 {
		log.Println("Seeding rooms...")
		seedRooms := []domain.Room{
			{Name: "Ruang Seminar A", Location: "Lantai 2 Gedung A", Capacity: 30, Type: domain.RoomMeetingRoom, IsAvailable: true},
			{Name: "Ruang Meeting B", Location: "Lantai 3 Gedung B", Capacity: 50, Type: domain.RoomMeetingRoom, IsAvailable: true},
			{Name: "Ruang Kelas C", Location: "Lantai 1 Gedung C", Capacity: 40, Type: domain.RoomClassRoom, IsAvailable: true},
			{Name: "Ruang Auditorium", Location: "Lantai 4 Gedung D", Capacity: 200, Type: domain.RoomConferenceRoom, IsAvailable: true},
		}
		for i := range seedRooms {
			if err := roomRepo.Create(ctx, &seedRooms[i]); err != nil {
				log.Fatal(err)
			}
		}
		rooms = seedRooms
	}

	bookings, err := bookingRepo.List(ctx)
	if err != nil {
		log.Fatal(err)
	}

	if len(bookings) == 0 && len(rooms) >= 2 {
		log.Println("Seeding bookings...")
		seedBookings := []booking.CreateBookingRequest{
			{
				RoomID:      rooms[0].ID,
				Title:       "Workshop Python",
				Description: "Pelatihan Python untuk semua level",
				StartTime:   time.Date(2026, 2, 15, 10, 0, 0, 0, time.UTC),
				EndTime:     time.Date(2026, 2, 15, 12, 0, 0, 0, time.UTC),
				BookedBy:    "John Doe",
			},
			{
				RoomID:      rooms[1].ID,
				Title:       "Meeting Rapat Direksi",
				Description: "Pertemuan rutin bulanan untuk evaluasi kinerja",
				StartTime:   time.Date(2026, 2, 11, 14, 0, 0, 0, time.UTC),
				EndTime:     time.Date(2026, 2, 11, 15, 30, 0, 0, time.UTC),
				BookedBy:    "Jane Smith",
			},
		}
		for _, req := range seedBookings {
			if _, err := bookingService.CreateBooking(ctx, req); err != nil {
				log.Fatal(err)
			}
		}
	}

	log.Println("Seed complete")
}
