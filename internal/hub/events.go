package hub

import (
	model "plate-auction/internal/models"
)

// Events turns committed mutations into topic events. Every method hands the
// event off to a goroutine and returns immediately: delivery is best-effort
// and no error ever reaches the mutating caller.
type Events struct {
	hub *Hub
}

// NewEvents creates the event publisher front end for a hub.
func NewEvents(h *Hub) *Events {
	return &Events{hub: h}
}

// PlateChanged publishes a plate mutation on the "plates" topic. Deletes
// carry only the plate id; the row no longer exists.
func (e *Events) PlateChanged(action string, plate model.Plate) {
	data := any(plate)
	if action == ActionDelete {
		data = map[string]int64{"id": plate.ID}
	}
	go e.hub.Publish(TopicPlates, Event{
		Action:       action,
		ResourceType: "plate",
		Data:         data,
	})
}

// BidChanged publishes a bid mutation twice: the raw event on the "bids"
// topic, and a wrapped bid_<action> event on the "plates" topic, because a
// bid change moves the plate's derived highest-bid view.
func (e *Events) BidChanged(action string, bid model.Bid) {
	go e.hub.Publish(TopicBids, Event{
		Action:       action,
		ResourceType: "bid",
		Data:         bid,
	})
	go e.hub.Publish(TopicPlates, Event{
		Action:       "bid_" + action,
		ResourceType: "bid_on_plate",
		PlateID:      bid.PlateID,
		Data:         bid,
	})
}
