package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minimarket/storefront-system/internal/shell"
)

// NotificationSource is the interface the handler uses to attach a listener
// to the notification dispatcher.
type NotificationSource interface {
	Subscribe() (<-chan shell.Notification, func())
}

// NotificationsHandler streams store notifications to clients over SSE.
// Clients render these as toast popups.
type NotificationsHandler struct {
	source NotificationSource
}

func NewNotificationsHandler(source NotificationSource) *NotificationsHandler {
	return &NotificationsHandler{source: source}
}

// Stream handles GET /v1/notifications.
//
// @Summary      Subscribe to store notifications (SSE)
// @Tags         notifications
// @Produce      text/event-stream
// @Success      200  {string}  string  "event stream"
// @Router       /v1/notifications [get]
func (h *NotificationsHandler) Stream(c echo.Context) error {
	ch, cancel := h.source.Subscribe()
	defer cancel()

	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set(echo.HeaderCacheControl, "no-cache")
	w.Header().Set(echo.HeaderConnection, "keep-alive")
	w.WriteHeader(http.StatusOK)
	w.Flush()

	for {
		select {
		case <-c.Request().Context().Done():
			return nil
		case n, ok := <-ch:
			if !ok {
				return nil
			}
			data, err := json.Marshal(n)
			if err != nil {
				continue
			}
			if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
				return nil
			}
			w.Flush()
		}
	}
}
