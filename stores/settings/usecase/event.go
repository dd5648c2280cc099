package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/nextswap/auction-api/domain"
	"github.com/nextswap/auction-api/domain/auction"
)

// admin events are not tied to an auction, they carry auction id 0
func newAdminEvent(typ auction.EventType, caller domain.Address) *auction.Event {
	return &auction.Event{
		EventId: uuid.New().String(),
		Type:    typ,
		Account: caller.ToLower(),
		Time:    time.Now(),
	}
}
