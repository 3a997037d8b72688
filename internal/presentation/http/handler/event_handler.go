package handler

import (
	"encoding/json"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/granjatech/granja-api/pkg/events"
)

// EventHandler streams stock-change notifications to clients over SSE so
// dashboards can refresh without polling.
type EventHandler struct {
	bus *events.Bus
}

// NewEventHandler creates a new event handler
func NewEventHandler(bus *events.Bus) *EventHandler {
	return &EventHandler{bus: bus}
}

// Stream handles a Server-Sent Events subscription. The stream stays open
// until the client disconnects.
func (h *EventHandler) Stream(c *gin.Context) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	ch, unsubscribe := h.bus.Subscribe()
	defer unsubscribe()

	clientGone := c.Request.Context().Done()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-clientGone:
			return false
		case evt, ok := <-ch:
			if !ok {
				return false
			}
			data, err := json.Marshal(evt)
			if err != nil {
				return true
			}
			c.SSEvent(evt.Type, string(data))
			return true
		}
	})
}
