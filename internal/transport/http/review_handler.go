package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"codescore-service/internal/app"
	"codescore-service/internal/guidelines"
	"codescore-service/internal/review"
)

// ReviewHandler serves the JSON API: code review, refactor, the guidelines
// page content, and the monster shop listing.
type ReviewHandler struct {
	reviewer *review.Reviewer
	arcade   *app.ArcadeService
}

func NewReviewHandler(reviewer *review.Reviewer, arcade *app.ArcadeService) *ReviewHandler {
	return &ReviewHandler{reviewer: reviewer, arcade: arcade}
}

// Register mounts the API routes on the mux.
func (h *ReviewHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/review", h.handleReview)
	mux.HandleFunc("/api/refactor", h.handleRefactor)
	mux.HandleFunc("/api/guidelines", h.handleGuidelines)
	mux.HandleFunc("/api/shop", h.handleShop)
}

type reviewResponse struct {
	Review       review.Review       `json:"review"`
	QualityLevel review.QualityLevel `json:"qualityLevel"`
}

type refactorResponse struct {
	Code string `json:"code"`
}

func (h *ReviewHandler) handleReview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if h.reviewer == nil {
		http.Error(w, "review backend not configured", http.StatusServiceUnavailable)
		return
	}
	var req review.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	result, err := h.reviewer.Analyze(r.Context(), req)
	if err != nil {
		writeReviewError(w, err)
		return
	}
	writeJSON(w, reviewResponse{
		Review:       result,
		QualityLevel: review.QualityLevelFor(result.OverallScore),
	})
}

func (h *ReviewHandler) handleRefactor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if h.reviewer == nil {
		http.Error(w, "review backend not configured", http.StatusServiceUnavailable)
		return
	}
	var req review.RefactorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	code, err := h.reviewer.Refactor(r.Context(), req)
	if err != nil {
		writeReviewError(w, err)
		return
	}
	writeJSON(w, refactorResponse{Code: code})
}

func (h *ReviewHandler) handleGuidelines(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	page, err := guidelines.DefaultPage()
	if err != nil {
		log.Printf("guidelines page invalid: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, page)
}

func (h *ReviewHandler) handleShop(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	monsters, err := h.arcade.Monsters(r.Context())
	if err != nil {
		log.Printf("load shop: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, monsters)
}

func writeReviewError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, review.ErrEmptyCode):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, review.ErrEmptyReview), errors.Is(err, review.ErrEmptyRefactor):
		http.Error(w, err.Error(), http.StatusBadGateway)
	default:
		log.Printf("review backend: %v", err)
		http.Error(w, "review backend error", http.StatusBadGateway)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}
