package storage

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"vaidya/internal/intake"
)

// Consultation statuses.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusProcessed  = "processed"
	StatusFailed     = "failed"
)

// Consultation is one intake request and its results. Records live only in
// process memory; nothing is persisted across restarts.
type Consultation struct {
	ID              string
	Status          string
	Modality        intake.Modality
	Language        intake.Language
	Symptoms        string
	DurationDays    int
	Transcript      string
	Diagnosis       string
	Prescription    string
	Recommendations string
	Error           string
	CreatedAt       string
}

// ConsultationStore is an in-memory consultation record map, safe for
// concurrent use.
type ConsultationStore struct {
	mu      sync.Mutex
	records map[string]*Consultation
}

// NewConsultationStore creates an empty store.
func NewConsultationStore() *ConsultationStore {
	return &ConsultationStore{records: make(map[string]*Consultation)}
}

// Create registers a new consultation and returns its ID.
func (s *ConsultationStore) Create(c *Consultation) string {
	id := uuid.New().String()

	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = id
	if c.Status == "" {
		c.Status = StatusPending
	}
	c.CreatedAt = time.Now().Format(time.RFC3339)
	s.records[id] = c
	return id
}

// Get retrieves a consultation by ID.
func (s *ConsultationStore) Get(id string) (*Consultation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[id]
	if !ok {
		return nil, false
	}
	// Return a copy to avoid race conditions
	recCopy := *rec
	return &recCopy, true
}

// UpdateStatus updates the status of a consultation.
func (s *ConsultationStore) UpdateStatus(id, status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec, ok := s.records[id]; ok {
		rec.Status = status
	}
}

// SetResult stores the pipeline output and marks the record processed.
func (s *ConsultationStore) SetResult(id, transcript, diagnosis, prescription, recommendations string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec, ok := s.records[id]; ok {
		rec.Transcript = transcript
		rec.Diagnosis = diagnosis
		rec.Prescription = prescription
		rec.Recommendations = recommendations
		rec.Status = StatusProcessed
	}
}

// SetError records a failure message and marks the record failed.
func (s *ConsultationStore) SetError(id, msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec, ok := s.records[id]; ok {
		rec.Error = msg
		rec.Status = StatusFailed
	}
}
