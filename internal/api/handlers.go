// Package api exposes the calendar over HTTP: door states, the redeem action,
// stats and achievements, profile, and backup export/import/reset. Rendering
// is a client concern; these endpoints only read and write the data model.
package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"advent/internal/backup"
	"advent/internal/engine"
	"advent/internal/gate"
	"advent/internal/profile"
)

// Handler holds all API handler state.
type Handler struct {
	svc        *engine.Service
	gate       *gate.Gate
	codec      *backup.Codec
	profile    *profile.Profile
	milestones *engine.Milestones
	log        *slog.Logger
}

func NewHandler(svc *engine.Service, g *gate.Gate, codec *backup.Codec, prof *profile.Profile, milestones *engine.Milestones, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{svc: svc, gate: g, codec: codec, profile: prof, milestones: milestones, log: log}
}

// Routes mounts the API.
func (h *Handler) Routes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth", h.Authenticate)

		r.Group(func(r chi.Router) {
			r.Use(h.requireAuth)

			r.Get("/doors", h.ListDoors)
			r.Post("/doors/{id}/redeem", h.RedeemDoor)
			r.Get("/doors/{id}/record", h.DoorRecord)

			r.Get("/stats", h.GetStats)
			r.Get("/achievements", h.GetAchievements)

			r.Get("/profile", h.GetProfile)
			r.Put("/profile/name", h.SetName)

			r.Get("/export", h.Export)
			r.Post("/import", h.Import)
			r.Post("/reset", h.Reset)
		})
	})
}

// requireAuth rejects requests until the session gate has been passed.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.gate.IsAuthenticated(r.Context()) {
			Error(w, http.StatusUnauthorized, "not authenticated")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Authenticate handles POST /api/auth.
func (h *Handler) Authenticate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Day   string `json:"day"`
		Month string `json:"month"`
		Year  string `json:"year"`
	}
	if err := decodeJSON(r.Body, &req); err != nil {
		Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if !h.gate.Authenticate(r.Context(), req.Day, req.Month, req.Year) {
		// Generic retry prompt; no lockout, no detail.
		Error(w, http.StatusUnauthorized, "that's not the date, try again")
		return
	}
	JSON(w, http.StatusOK, map[string]bool{"authenticated": true})
}

// ListDoors handles GET /api/doors.
func (h *Handler) ListDoors(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string]any{"doors": h.svc.Doors()})
}

// RedeemDoor handles POST /api/doors/{id}/redeem.
func (h *Handler) RedeemDoor(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		Error(w, http.StatusBadRequest, "id must be an integer")
		return
	}

	res, err := h.svc.Redeem(r.Context(), id, h.milestones)
	if err != nil {
		var locked engine.LockedDoorError
		var unknown engine.UnknownCouponError
		switch {
		case errors.As(err, &locked):
			Error(w, http.StatusConflict, locked.Error())
		case errors.As(err, &unknown):
			Error(w, http.StatusNotFound, unknown.Error())
		default:
			Error(w, http.StatusInternalServerError, "redeem failed")
		}
		return
	}

	status := http.StatusCreated
	if res.AlreadyRedeemed {
		status = http.StatusOK
	}
	JSON(w, status, map[string]any{
		"coupon":          res.Coupon,
		"redeemedAt":      res.RedeemedAt,
		"alreadyRedeemed": res.AlreadyRedeemed,
		"milestones":      res.Milestones,
	})
}

// DoorRecord handles GET /api/doors/{id}/record, the scannable payload.
func (h *Handler) DoorRecord(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		Error(w, http.StatusBadRequest, "id must be an integer")
		return
	}
	door, err := h.svc.Door(id)
	if err != nil {
		Error(w, http.StatusNotFound, err.Error())
		return
	}
	at, ok := h.svc.Ledger().RedeemedAt(id)
	if !ok {
		Error(w, http.StatusConflict, "coupon is not redeemed")
		return
	}
	JSON(w, http.StatusOK, profile.NewRedemptionRecord(door.Coupon, at))
}

// GetStats handles GET /api/stats.
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, h.svc.Stats())
}

// GetAchievements handles GET /api/achievements.
func (h *Handler) GetAchievements(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string]any{"achievements": h.svc.Achievements()})
}

// GetProfile handles GET /api/profile.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	name, _ := h.profile.Name(r.Context())
	JSON(w, http.StatusOK, map[string]any{
		"name":         name,
		"stats":        h.svc.Stats(),
		"achievements": h.svc.Achievements(),
	})
}

// SetName handles PUT /api/profile/name.
func (h *Handler) SetName(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(r.Body, &req); err != nil {
		Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if !h.profile.SetName(r.Context(), req.Name) {
		Error(w, http.StatusUnprocessableEntity, "name must not be empty")
		return
	}
	JSON(w, http.StatusOK, map[string]string{"name": req.Name})
}

// Export handles GET /api/export.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Disposition", `attachment; filename="advent-backup.json"`)
	JSON(w, http.StatusOK, h.codec.Export())
}

// Import handles POST /api/import. The body is the backup document itself.
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, backup.MaxImportSize))
	if err != nil {
		Error(w, http.StatusRequestEntityTooLarge, backup.ErrFileTooLarge.Error())
		return
	}

	res, err := h.codec.Import(r.Context(), body)
	if err != nil {
		switch {
		case errors.Is(err, backup.ErrFileTooLarge):
			Error(w, http.StatusRequestEntityTooLarge, err.Error())
		default:
			Error(w, http.StatusBadRequest, err.Error())
		}
		return
	}
	h.log.Info("backup imported", "coupons", res.Imported, "version_mismatch", res.VersionMismatch)
	JSON(w, http.StatusOK, map[string]any{
		"imported":        res.Imported,
		"versionMismatch": res.VersionMismatch,
		"documentVersion": res.DocumentVersion,
	})
}

// Reset handles POST /api/reset. The two-step confirmation lives with the
// client; the server refuses unconfirmed requests.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Confirm bool `json:"confirm"`
	}
	if err := decodeJSON(r.Body, &req); err != nil {
		Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := h.codec.Reset(r.Context(), req.Confirm); err != nil {
		Error(w, http.StatusBadRequest, err.Error())
		return
	}
	h.log.Info("calendar reset")
	JSON(w, http.StatusOK, map[string]bool{"reset": true})
}
