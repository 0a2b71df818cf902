package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/amphorabeer/pms_backend/internal/core/domain"
)

func TestReservation_InHouseOn(t *testing.T) {
	checkIn := time.Date(2025, 8, 29, 15, 30, 0, 0, time.UTC)
	checkOut := time.Date(2025, 9, 2, 11, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		status domain.ReservationStatus
		date   time.Time
		want   bool
	}{
		{
			name:   "checked in, mid stay",
			status: domain.ResCheckedIn,
			date:   time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC),
			want:   true,
		},
		{
			name:   "checked in, arrival day counts despite later check-in time",
			status: domain.ResCheckedIn,
			date:   time.Date(2025, 8, 29, 0, 0, 0, 0, time.UTC),
			want:   true,
		},
		{
			name:   "checked in, departure day is excluded",
			status: domain.ResCheckedIn,
			date:   time.Date(2025, 9, 2, 0, 0, 0, 0, time.UTC),
			want:   false,
		},
		{
			name:   "checked in, before arrival",
			status: domain.ResCheckedIn,
			date:   time.Date(2025, 8, 28, 0, 0, 0, 0, time.UTC),
			want:   false,
		},
		{
			name:   "confirmed but not checked in",
			status: domain.ResConfirmed,
			date:   time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC),
			want:   false,
		},
		{
			name:   "checked out",
			status: domain.ResCheckedOut,
			date:   time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC),
			want:   false,
		},
		{
			name:   "no show",
			status: domain.ResNoShow,
			date:   time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC),
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := domain.Reservation{
				ReservationID: "RES-1",
				CheckIn:       checkIn,
				CheckOut:      checkOut,
				Status:        tt.status,
			}
			assert.Equal(t, tt.want, res.InHouseOn(tt.date))
		})
	}
}
