package domain

import "time"

// ClassificationResult is the submission-path engine output.
// Produced once per submitted complaint and immutable thereafter;
// ownership passes to the persistence layer.
type ClassificationResult struct {
	Category   Category
	Urgency    Urgency
	Department string
	Sentiment  Sentiment
}

// Status is the lifecycle state of a stored complaint.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
	StatusClosed     Status = "closed"
)

// ValidStatus reports whether s is one of the accepted lifecycle states.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusResolved, StatusClosed:
		return true
	}
	return false
}

// Complaint is a persisted complaint record.
type Complaint struct {
	ID          uint64    `json:"id"`
	Category    Category  `json:"category"`
	Urgency     Urgency   `json:"urgency"`
	Department  string    `json:"department"`
	Sentiment   Sentiment `json:"sentiment"`
	Status      Status    `json:"status"`
	Description string    `json:"description"`
	// ExtractedText is the OCR output supplied by the media collaborator,
	// truncated for storage the same way the acknowledgment truncates it.
	ExtractedText string    `json:"extracted_text,omitempty"`
	FileName      string    `json:"file_name,omitempty"`
	FileType      string    `json:"file_type,omitempty"`
	FileSize      int64     `json:"file_size,omitempty"`
	SubmittedAt   time.Time `json:"submitted_at"`
}

// Receipt acknowledges a submitted complaint back to the caller.
type Receipt struct {
	ID             uint64               `json:"id"`
	Result         ClassificationResult `json:"-"`
	Category       Category             `json:"category"`
	Urgency        string               `json:"urgency"`
	Department     string               `json:"department"`
	Sentiment      Sentiment            `json:"sentiment"`
	Acknowledgment string               `json:"acknowledgment"`
	ProcessingTime float64              `json:"processing_time"`
}
