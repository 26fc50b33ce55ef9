package mux

import (
	"fmt"
	"net/http"
	"pokerrooms-server/pkg/room"

	"github.com/sirupsen/logrus"
)

func (m *Mux) getRoom() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, m.pitBoss.AvailableRooms())
	}
}

type postRoomPayload struct {
	MaxSeats int `json:"maxSeats"`
	Bots     int `json:"bots"`
}

func (m *Mux) postRoom() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postRoomPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		if pp.Bots < 0 || pp.Bots > m.config.maxBots {
			writeJSONError(w, http.StatusBadRequest, fmt.Errorf("bots must be between 0 and %d", m.config.maxBots))
			return
		}

		if pp.MaxSeats > 0 && pp.Bots >= pp.MaxSeats {
			writeJSONError(w, http.StatusBadRequest, fmt.Errorf("bots must leave a seat open"))
			return
		}

		dealer, err := m.pitBoss.CreateRoom(pp.MaxSeats)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		for i := 0; i < pp.Bots; i++ {
			if err := dealer.AddBot(); err != nil {
				writeRoomError(w, err)
				return
			}
		}

		summary, err := dealer.Summary()
		if err != nil {
			writeRoomError(w, err)
			return
		}

		logrus.WithField("room", dealer.ID()).WithField("remoteAddr", remoteAddr(r)).Info("room created over HTTP")
		writeJSON(w, http.StatusCreated, summary)
	}
}

func (m *Mux) getRoomID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dealer := r.Context().Value(ctxRoomKey).(*room.Dealer)
		summary, err := dealer.Summary()
		if err != nil {
			writeRoomError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}

// getRoomIDState returns the room as the viewer sees it, or as a spectator if there is no viewer
func (m *Mux) getRoomIDState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dealer := r.Context().Value(ctxRoomKey).(*room.Dealer)
		state, err := dealer.StateFor(r.FormValue("viewer"))
		if err != nil {
			writeRoomError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, state)
	}
}
