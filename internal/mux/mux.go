package mux

import (
	"context"
	"net/http"
	"pokerrooms-server/pkg/room"

	gmux "github.com/gorilla/mux"
)

type ctxKey int

const (
	ctxRoomKey ctxKey = iota
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	config  config
	version string
	pitBoss *room.PitBoss
}

type config struct {
	// maxBots is the most bots a room can be created with
	maxBots int

	// maxNameLength is the longest display name a player can use
	maxNameLength int
}

// NewMux returns a new HTTP mux
func NewMux(version string, pitBoss *room.PitBoss) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		pitBoss: pitBoss,
		config: config{
			maxBots:       5,
			maxNameLength: 20,
		},
	}

	{
		r := this.Router
		r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
		r.Methods(http.MethodGet).Path("/room").Handler(this.getRoom())
		r.Methods(http.MethodPost).Path("/room").Handler(this.postRoom())

		rr := r.PathPrefix("/room/{id:[A-Za-z0-9-]+}").Subrouter()
		rr.Use(this.roomMiddleware)

		rr.Methods(http.MethodGet).Path("").Handler(this.getRoomID())
		rr.Methods(http.MethodGet).Path("/state").Handler(this.getRoomIDState())
		rr.Methods(http.MethodGet).Path("/ws").Handler(this.getRoomIDWS())
	}

	return this
}

func (m *Mux) roomMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dealer, err := m.pitBoss.Room(gmux.Vars(r)["id"])
		if err != nil {
			writeJSONError(w, http.StatusNotFound, err)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxRoomKey, dealer)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}
