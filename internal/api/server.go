package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"pvpsim/internal/combat"
	"pvpsim/internal/config"
	"pvpsim/internal/cp"
	"pvpsim/internal/matchup"
)

// SimulateRequest is the body of POST /simulate and the first message of a
// replay stream. Settings falls back to the server defaults when omitted.
type SimulateRequest struct {
	Settings   *config.SettingsDef    `json:"settings,omitempty"`
	Combatants [2]config.CombatantDef `json:"combatants"`
	Timeline   bool                   `json:"timeline"`
}

// StreamMessage frames every websocket message of a replay.
type StreamMessage struct {
	Type   string         `json:"type"` // event | result | error
	Event  *combat.Event  `json:"event,omitempty"`
	Result *combat.Result `json:"result,omitempty"`
	Error  string         `json:"error,omitempty"`
}

type Server struct {
	dex      *combat.Dex
	settings combat.Settings
	roster   *config.Roster
	runner   *matchup.Runner
	log      *zap.Logger
	upgrader websocket.Upgrader
}

// NewServer wires the handlers. roster may be nil, in which case /matchups
// answers 404.
func NewServer(dex *combat.Dex, settings combat.Settings, roster *config.Roster, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		dex:      dex,
		settings: settings,
		roster:   roster,
		runner:   &matchup.Runner{Dex: dex, Settings: settings, Log: log},
		log:      log,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

func (s *Server) Routes() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", s.health).Methods(http.MethodGet)
	r.HandleFunc("/simulate", s.simulate).Methods(http.MethodPost)
	r.HandleFunc("/matchups", s.matchups).Methods(http.MethodGet)
	r.HandleFunc("/species/{id}/spread", s.spread).Methods(http.MethodGet)
	r.HandleFunc("/replay", s.replay)
	r.Use(s.logRequests)
	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.log.Debug("request", zap.String("method", r.Method), zap.String("path", r.URL.Path))
		next.ServeHTTP(w, r)
	})
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) simulate(w http.ResponseWriter, r *http.Request) {
	var req SimulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body: "+err.Error())
		return
	}
	bt, err := s.battle(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	res, err := bt.Simulate(req.Timeline)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// battle builds both sides and the settings for one request.
func (s *Server) battle(req SimulateRequest) (*combat.Battle, error) {
	settings := s.settings
	if req.Settings != nil {
		var err error
		if settings, err = combat.SettingsFrom(*req.Settings); err != nil {
			return nil, err
		}
	}
	var sides [2]*combat.Combatant
	for i, def := range req.Combatants {
		c, err := s.dex.Build(def)
		if err != nil {
			return nil, err
		}
		sides[i] = c
	}
	return combat.NewBattle(sides[0], sides[1], combat.WithSettings(settings), combat.WithLogger(s.log)), nil
}

func (s *Server) matchups(w http.ResponseWriter, r *http.Request) {
	if s.roster == nil || len(s.roster.Entrants) == 0 {
		writeError(w, http.StatusNotFound, "no roster loaded")
		return
	}
	shields := s.roster.Shields
	if q := r.URL.Query().Get("shields"); q != "" {
		shields = nil
		for _, part := range strings.Split(q, ",") {
			n, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				writeError(w, http.StatusBadRequest, "bad shields value "+strconv.Quote(part))
				return
			}
			shields = append(shields, n)
		}
	}
	m, err := s.runner.Run(r.Context(), s.roster.Entrants, shields)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (s *Server) spread(w http.ResponseWriter, r *http.Request) {
	sp, err := s.dex.Species(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	cpCap := 1500
	if q := r.URL.Query().Get("cp"); q != "" {
		if cpCap, err = strconv.Atoi(q); err != nil || cpCap <= 0 {
			writeError(w, http.StatusBadRequest, "bad cp value "+strconv.Quote(q))
			return
		}
	}
	level := cp.MaxLevel
	if q := r.URL.Query().Get("level"); q != "" {
		if level, err = strconv.ParseFloat(q, 64); err != nil || !cp.ValidLevel(level) {
			writeError(w, http.StatusBadRequest, "bad level value "+strconv.Quote(q))
			return
		}
	}
	writeJSON(w, http.StatusOK, cp.BestSpread(sp.Base, cpCap, level))
}

// replay upgrades to a websocket, reads one SimulateRequest and streams the
// timeline event by event, closing with the result.
func (s *Server) replay(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	var req SimulateRequest
	if err := conn.ReadJSON(&req); err != nil {
		_ = conn.WriteJSON(StreamMessage{Type: "error", Error: "invalid request: " + err.Error()})
		return
	}
	bt, err := s.battle(req)
	if err != nil {
		_ = conn.WriteJSON(StreamMessage{Type: "error", Error: err.Error()})
		return
	}
	res, err := bt.Simulate(true)
	if err != nil {
		_ = conn.WriteJSON(StreamMessage{Type: "error", Error: err.Error()})
		return
	}
	for i := range res.Timeline {
		if err := conn.WriteJSON(StreamMessage{Type: "event", Event: &res.Timeline[i]}); err != nil {
			s.log.Debug("replay aborted", zap.Error(err))
			return
		}
	}
	res.Timeline = nil
	if err := conn.WriteJSON(StreamMessage{Type: "result", Result: &res}); err != nil {
		s.log.Debug("replay aborted", zap.Error(err))
		return
	}
	_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{
		"error":   http.StatusText(code),
		"message": msg,
		"status":  code,
	})
}
