package auction

import (
	"time"

	"github.com/nextswap/auction-api/base/ctx"
	"github.com/nextswap/auction-api/domain"
)

type EventType string

const (
	EventTypeCreated             EventType = "created"
	EventTypeStarted             EventType = "started"
	EventTypeCanceled            EventType = "canceled"
	EventTypeBidPlaced           EventType = "bidPlaced"
	EventTypeBidRefunded         EventType = "bidRefunded"
	EventTypeEnded               EventType = "ended"
	EventTypeEmergencyWithdrawn  EventType = "emergencyWithdrawn"
	EventTypeFeeRecipientUpdated EventType = "feeRecipientUpdated"
	EventTypeDataFeedUpdated     EventType = "dataFeedUpdated"
	EventTypePaused              EventType = "paused"
	EventTypeUnpaused            EventType = "unpaused"
)

// Event is the append-only audit record of a state transition. Exactly one
// event is written per logical transition, in the same transaction as the
// state change.
type Event struct {
	EventId   string         `json:"eventId" bson:"eventId"`
	AuctionId int64          `json:"auctionId" bson:"auctionId"`
	Type      EventType      `json:"type" bson:"type"`
	Account   domain.Address `json:"account" bson:"account"`
	To        domain.Address `json:"to" bson:"to"`
	// Amount in reference currency, decimal string
	Amount string `json:"amount" bson:"amount"`
	// AmountNative in wei
	AmountNative string    `json:"amountNative" bson:"amountNative"`
	Time         time.Time `json:"time" bson:"time"`
}

type EventRepo interface {
	Insert(c ctx.Ctx, e *Event) error
	FindAll(c ctx.Ctx, auctionId int64) ([]*Event, error)
}
