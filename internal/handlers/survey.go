package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"pulse-backend/internal/export"
	"pulse-backend/internal/middleware"
	"pulse-backend/internal/models"
	"pulse-backend/internal/notify"
	"pulse-backend/internal/repository"
	"pulse-backend/internal/stats"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type SurveyHandler struct {
	surveyStore repository.SurveyStore
	notifier    notify.Notifier
}

func NewSurveyHandler(surveyStore repository.SurveyStore, notifier notify.Notifier) *SurveyHandler {
	return &SurveyHandler{
		surveyStore: surveyStore,
		notifier:    notifier,
	}
}

type SubmitSurveyRequest struct {
	Name         string                `json:"name"`
	Email        string                `json:"email"`
	Department   string                `json:"department"`
	Ratings      map[int]models.Rating `json:"ratings"`
	FinalComment string                `json:"finalComment"`
}

// --- GET /api/feedbacks ---

func (h *SurveyHandler) List(w http.ResponseWriter, r *http.Request) {
	surveys, err := h.surveyStore.List(r.Context())
	if err != nil {
		log.Printf("Error listing surveys: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to fetch feedbacks"})
		return
	}

	surveys = stats.Filter(surveys, r.URL.Query().Get("department"))
	if surveys == nil {
		surveys = []models.Survey{}
	}
	writeJSON(w, http.StatusOK, surveys)
}

// --- POST /api/feedbacks ---

// Create validates the submission at the boundary (known department, every
// question rated 1-5) and stamps user_id and created_at server-side,
// whatever the body claims. One survey per user is enforced by the store's
// unique index, so a concurrent double-submit loses cleanly with a 409.
func (h *SurveyHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return
	}

	var req SubmitSurveyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if req.Department == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "please select a department before submitting"})
		return
	}
	if !models.ValidDepartment(req.Department) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown department"})
		return
	}

	ratings := make(map[int]int, len(models.Questions))
	for _, q := range models.Questions {
		rating, ok := req.Ratings[q.ID]
		if !ok {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "please provide ratings for all questions"})
			return
		}
		if rating < 1 || rating > 5 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("rating for question %d must be between 1 and 5", q.ID)})
			return
		}
		ratings[q.ID] = int(rating)
	}
	for id := range req.Ratings {
		if _, ok := models.QuestionByID(id); !ok {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("unknown question id %d", id)})
			return
		}
	}

	userID, err := bson.ObjectIDFromHex(principal.UserID)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid user ID"})
		return
	}

	survey := &models.Survey{
		UserID:       userID,
		Name:         req.Name,
		Email:        req.Email,
		Department:   req.Department,
		Ratings:      ratings,
		FinalComment: req.FinalComment,
	}

	if err := h.surveyStore.Create(r.Context(), survey); err != nil {
		if err == repository.ErrDuplicateSurvey {
			writeJSON(w, http.StatusConflict, map[string]string{"error": "you have already submitted feedback, only one feedback per user is allowed"})
			return
		}
		log.Printf("Error creating survey: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to submit feedback"})
		return
	}

	// Fire admin notification in a background goroutine (non-blocking)
	go func() {
		message := formatSubmissionMessage(survey)
		if err := h.notifier.Publish(context.Background(), message); err != nil {
			log.Printf("Error publishing notification: %v", err)
		}
	}()

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message":  "feedback submitted successfully",
		"feedback": survey,
	})
}

// --- DELETE /api/feedbacks/{id} ---

func (h *SurveyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid feedback ID"})
		return
	}

	if err := h.surveyStore.Delete(r.Context(), id); err != nil {
		if err == repository.ErrSurveyNotFound {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "feedback not found"})
			return
		}
		log.Printf("Error deleting survey: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to delete feedback"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "feedback deleted successfully"})
}

// --- GET /api/stats/departments ---

func (h *SurveyHandler) DepartmentStats(w http.ResponseWriter, r *http.Request) {
	surveys, err := h.surveyStore.List(r.Context())
	if err != nil {
		log.Printf("Error listing surveys: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to fetch feedbacks"})
		return
	}

	surveys = stats.Filter(surveys, r.URL.Query().Get("department"))
	writeJSON(w, http.StatusOK, stats.GroupByDepartment(surveys))
}

// --- GET /api/feedbacks/export ---

func (h *SurveyHandler) Export(w http.ResponseWriter, r *http.Request) {
	surveys, err := h.surveyStore.List(r.Context())
	if err != nil {
		log.Printf("Error listing surveys: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to fetch feedbacks"})
		return
	}

	rows := stats.ExportRows(surveys, models.Questions)
	workbook, err := export.Workbook(rows, models.Questions)
	if err != nil {
		log.Printf("Error building workbook: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to build export"})
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="feedback_data.xlsx"`)
	if err := workbook.Write(w); err != nil {
		log.Printf("Error writing workbook: %v", err)
	}
}

func formatSubmissionMessage(survey *models.Survey) string {
	return fmt.Sprintf("New satisfaction survey submitted\nName: %s\nEmail: %s\nDepartment: %s",
		survey.Name, survey.Email, survey.Department)
}
