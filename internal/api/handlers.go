package api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"vaidya/internal/diagnose"
	"vaidya/internal/intake"
	"vaidya/internal/storage"
	"vaidya/internal/tts"
	"vaidya/internal/utils"
)

// DiagnosisService is the slice of the orchestration service the HTTP
// layer needs. Implemented by *diagnose.Service.
type DiagnosisService interface {
	Run(ctx context.Context, req *intake.Request) (*diagnose.Result, error)
	Transcribe(ctx context.Context, audioPath string) (string, error)
	Synthesize(ctx context.Context, text string, lang intake.Language) []byte
}

// Handler exposes the intake pipeline over HTTP.
type Handler struct {
	svc       DiagnosisService
	store     *storage.ConsultationStore
	uploadDir string
}

// NewHandler creates a Handler.
func NewHandler(svc DiagnosisService, store *storage.ConsultationStore, uploadDir string) *Handler {
	return &Handler{svc: svc, store: store, uploadDir: uploadDir}
}

// RegisterRoutes mounts all endpoints on the engine.
func RegisterRoutes(r *gin.Engine, h *Handler) {
	r.GET("/health", h.healthCheck)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/diagnose", h.diagnose)
		v1.POST("/transcribe", h.transcribe)
		v1.POST("/speech", h.speech)
		v1.GET("/consultations/:id", h.getConsultation)
	}
}

func (h *Handler) healthCheck(c *gin.Context) {
	utils.Success(c, gin.H{
		"status":  "ok",
		"service": "vaidya-backend",
	})
}

// diagnose handles POST /api/v1/diagnose. Form fields: symptoms,
// prior_symptoms, duration_days, language, plus an optional audio_file or
// image_file upload that selects the modality.
func (h *Handler) diagnose(c *gin.Context) {
	lang, err := intake.ParseLanguage(c.PostForm("language"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	durationDays := 0
	if v := c.PostForm("duration_days"); v != "" {
		durationDays, err = strconv.Atoi(v)
		if err != nil {
			utils.Error(c, http.StatusBadRequest, "duration_days must be an integer")
			return
		}
	}

	req := &intake.Request{
		Modality:      intake.ModalityText,
		Symptoms:      c.PostForm("symptoms"),
		PriorSymptoms: c.PostForm("prior_symptoms"),
		DurationDays:  durationDays,
		Language:      lang,
	}

	if file, ferr := c.FormFile("image_file"); ferr == nil {
		path, serr := storage.SaveUpload(file, storage.UploadImage, h.uploadDir)
		if serr != nil {
			utils.Error(c, http.StatusBadRequest, serr.Error())
			return
		}
		req.Modality = intake.ModalityImage
		req.ImagePath = path
	} else if file, ferr := c.FormFile("audio_file"); ferr == nil {
		path, serr := storage.SaveUpload(file, storage.UploadAudio, h.uploadDir)
		if serr != nil {
			utils.Error(c, http.StatusBadRequest, serr.Error())
			return
		}
		req.Modality = intake.ModalityAudio
		req.AudioPath = path
	}

	id := h.store.Create(&storage.Consultation{
		Modality:     req.Modality,
		Language:     req.Language,
		Symptoms:     req.Symptoms,
		DurationDays: req.DurationDays,
	})
	h.store.UpdateStatus(id, storage.StatusProcessing)

	result, err := h.svc.Run(c.Request.Context(), req)
	if err != nil {
		var inputErr *intake.InputError
		if errors.As(err, &inputErr) {
			h.store.SetError(id, inputErr.Error())
			utils.Error(c, http.StatusBadRequest, inputErr.Error())
			return
		}
		log.Printf("[API] Diagnosis pipeline error for %s: %v", id, err)
		h.store.SetError(id, err.Error())
		utils.Error(c, http.StatusInternalServerError, "diagnosis pipeline failed")
		return
	}

	if result.Status == diagnose.StatusFailed {
		h.store.SetError(id, result.ErrorMessage)
		utils.Success(c, gin.H{
			"consultation_id": id,
			"status":          result.Status,
			"error_kind":      result.ErrorKind,
			"error_message":   result.ErrorMessage,
		})
		return
	}

	h.store.SetResult(id, result.Transcript, result.Diagnosis, result.Prescription, result.Recommendations)

	data := gin.H{
		"consultation_id": id,
		"status":          result.Status,
		"diagnosis":       result.Diagnosis,
		"prescription":    result.Prescription,
		"recommendations": result.Recommendations,
	}
	if result.Transcript != "" {
		data["transcript"] = result.Transcript
	}
	if result.Audio != nil {
		// []byte marshals as base64
		data["audio"] = result.Audio
		data["audio_mime"] = tts.MimeType
	}
	utils.Success(c, data)
}

// transcribe handles POST /api/v1/transcribe. A failed transcription is a
// normal outcome: the client shows a "transcription failed" state and lets
// the patient type instead.
func (h *Handler) transcribe(c *gin.Context) {
	file, err := c.FormFile("audio_file")
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "audio_file is required")
		return
	}

	path, err := storage.SaveUpload(file, storage.UploadAudio, h.uploadDir)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	transcript, err := h.svc.Transcribe(c.Request.Context(), path)
	if err != nil {
		log.Printf("[API] Transcription failed: %v", err)
		utils.Success(c, gin.H{
			"status":     "failed",
			"transcript": nil,
		})
		return
	}

	utils.Success(c, gin.H{
		"status":     "ok",
		"transcript": transcript,
	})
}

type speechRequest struct {
	Text     string `json:"text" binding:"required"`
	Language string `json:"language"`
}

// speech handles POST /api/v1/speech and returns raw MP3 bytes.
func (h *Handler) speech(c *gin.Context) {
	var req speechRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "text is required")
		return
	}
	lang, err := intake.ParseLanguage(req.Language)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	audio := h.svc.Synthesize(c.Request.Context(), req.Text, lang)
	if audio == nil {
		utils.Error(c, http.StatusBadGateway, "audio synthesis failed")
		return
	}
	c.Data(http.StatusOK, tts.MimeType, audio)
}

// getConsultation handles GET /api/v1/consultations/:id.
func (h *Handler) getConsultation(c *gin.Context) {
	id := c.Param("id")
	rec, ok := h.store.Get(id)
	if !ok {
		utils.Error(c, http.StatusNotFound, "consultation not found")
		return
	}

	data := gin.H{
		"consultation_id": rec.ID,
		"status":          rec.Status,
		"modality":        rec.Modality,
		"language":        rec.Language,
		"created_at":      rec.CreatedAt,
	}
	if rec.Symptoms != "" {
		data["symptoms"] = rec.Symptoms
	}
	if rec.Transcript != "" {
		data["transcript"] = rec.Transcript
	}
	if rec.Diagnosis != "" {
		data["diagnosis"] = rec.Diagnosis
	}
	if rec.Prescription != "" {
		data["prescription"] = rec.Prescription
	}
	if rec.Recommendations != "" {
		data["recommendations"] = rec.Recommendations
	}
	if rec.Error != "" {
		data["error_message"] = rec.Error
	}
	utils.Success(c, data)
}
