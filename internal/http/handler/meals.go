package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"dailydiet/internal/auth"
	"dailydiet/internal/meal"
)

type MealHandler struct {
	Meals meal.Store
	Log   zerolog.Logger
}

type createMealReq struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Date        string  `json:"date"` // RFC3339
	IsDiet      *bool   `json:"isDiet"`
}

func (h *MealHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	var req createMealReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid body")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if len(req.Name) < 1 || len(req.Name) > 255 {
		respondError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if req.Description != nil && len(*req.Description) > 255 {
		respondError(w, http.StatusBadRequest, "invalid body")
		return
	}
	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid date (RFC3339)")
		return
	}

	m := meal.Meal{
		UserID: uid, // owner comes from the token, never the body
		Name:   req.Name,
		Date:   date,
	}
	if req.Description != nil {
		m.Description = *req.Description
	}
	if req.IsDiet != nil {
		m.IsDiet = *req.IsDiet
	}

	if _, err := h.Meals.Create(r.Context(), m); err != nil {
		h.Log.Error().Err(err).Msg("meal create failed")
		respondError(w, http.StatusInternalServerError, "server error")
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *MealHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	meals, err := h.Meals.ListByOwner(r.Context(), uid)
	if err != nil {
		if errors.Is(err, meal.ErrNoMeals) {
			respondError(w, http.StatusNotFound, "meals not found")
			return
		}
		h.Log.Error().Err(err).Msg("meal list failed")
		respondError(w, http.StatusInternalServerError, "server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"meals": meals})
}

func (h *MealHandler) Get(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	m, err := h.Meals.GetOne(r.Context(), uid, id)
	if err != nil {
		if errors.Is(err, meal.ErrNotFound) {
			respondError(w, http.StatusNotFound, "meal not found")
			return
		}
		h.Log.Error().Err(err).Msg("meal get failed")
		respondError(w, http.StatusInternalServerError, "server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"meal": m})
}

type updateMealReq struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	IsDiet      *bool   `json:"isDiet"`
}

// Update writes only the supplied fields. The predicate is {id, owner}, so a
// request against another owner's meal matches zero rows and still gets 204.
func (h *MealHandler) Update(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	var req updateMealReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid body")
		return
	}

	var fields meal.UpdateFields
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if len(name) < 1 || len(name) > 255 {
			respondError(w, http.StatusBadRequest, "invalid body")
			return
		}
		fields.Name = &name
	}
	if req.Description != nil {
		if len(*req.Description) > 255 {
			respondError(w, http.StatusBadRequest, "invalid body")
			return
		}
		fields.Description = req.Description
	}
	if req.Date != nil {
		date, err := time.Parse(time.RFC3339, *req.Date)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid date (RFC3339)")
			return
		}
		fields.Date = &date
	}
	fields.IsDiet = req.IsDiet

	if err := h.Meals.Update(r.Context(), uid, id, fields); err != nil {
		h.Log.Error().Err(err).Msg("meal update failed")
		respondError(w, http.StatusInternalServerError, "server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *MealHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	if err := h.Meals.Delete(r.Context(), uid, id); err != nil {
		h.Log.Error().Err(err).Msg("meal delete failed")
		respondError(w, http.StatusInternalServerError, "server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
