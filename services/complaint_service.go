package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/samber/lo"

	"rail-madad/domain"
	"rail-madad/engine"
	apperrors "rail-madad/errors"
	"rail-madad/observability"
	"rail-madad/repositories"
	"rail-madad/search"
)

// Declared attachment types the portal accepts. The detected type must agree
// with the declared one; mimetype resolves aliases such as image/jpg and
// video/avi.
var supportedMediaTypes = []string{
	"image/jpeg", "image/png", "image/jpg",
	"video/mp4", "video/avi",
}

// extractedTextStoreLimit bounds the OCR text kept on the stored record.
const extractedTextStoreLimit = 200

type IComplaintService interface {
	Submit(ctx context.Context, submission Submission) (domain.Receipt, error)
	Status(id uint64) (domain.Complaint, error)
	UpdateStatus(id uint64, status domain.Status) (domain.Complaint, error)
	List(skip, limit int) (ListResult, error)
	Search(ctx context.Context, terms string, category domain.Category) (SearchResult, error)
	Stats() (Stats, error)
	Trends() (Trends, error)
	UrgencyDistribution() (UrgencyDistribution, error)
	DepartmentStats() (DepartmentStats, error)
	ExportTrendsCSV(w io.Writer) error
}

// Submission is one inbound complaint. ExtractedText is the OCR
// collaborator's output for the attachment; the service never decodes media
// itself.
type Submission struct {
	Description   string
	ExtractedText string
	Attachment    *Attachment
}

type Attachment struct {
	FileName     string
	DeclaredType string
	Data         []byte
}

type ListResult struct {
	Complaints []domain.Complaint `json:"complaints"`
	Total      int                `json:"total"`
}

type SearchResult struct {
	Hits  []search.Hit `json:"hits"`
	Total uint64       `json:"total"`
}

type Stats struct {
	TotalComplaints       int     `json:"total_complaints"`
	UniqueCategories      int     `json:"unique_categories"`
	HighUrgencyPercentage float64 `json:"high_urgency_percentage"`
}

type TrendItem struct {
	Category   string  `json:"category"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type Trends struct {
	Trends          []TrendItem `json:"trends"`
	TotalComplaints int         `json:"total_complaints"`
}

type UrgencyBucket struct {
	UrgencyLevel string  `json:"urgency_level"`
	Count        int     `json:"count"`
	Percentage   float64 `json:"percentage"`
}

type UrgencyDistribution struct {
	Distribution    []UrgencyBucket `json:"urgency_distribution"`
	TotalComplaints int             `json:"total_complaints"`
}

type DepartmentStat struct {
	Department                  string  `json:"department"`
	TotalComplaints             int     `json:"total_complaints"`
	HighUrgencyPercentage       float64 `json:"high_urgency_percentage"`
	NegativeSentimentPercentage float64 `json:"negative_sentiment_percentage"`
}

type DepartmentStats struct {
	Departments []DepartmentStat `json:"department_stats"`
}

type ComplaintService struct {
	engine         *engine.Engine
	repository     repositories.IComplaintRepository
	index          search.IComplaintIndex
	monitor        *observability.MonitoringManager
	log            *slog.Logger
	maxUploadBytes int64
}

func NewComplaintService(
	eng *engine.Engine,
	repository repositories.IComplaintRepository,
	index search.IComplaintIndex,
	monitor *observability.MonitoringManager,
	log *slog.Logger,
	maxUploadBytes int64,
) *ComplaintService {
	return &ComplaintService{
		engine:         eng,
		repository:     repository,
		index:          index,
		monitor:        monitor,
		log:            log,
		maxUploadBytes: maxUploadBytes,
	}
}

// Submit validates the attachment, classifies the combined OCR and
// description text, persists the complaint, indexes it for search, and
// returns the acknowledgment receipt.
func (s *ComplaintService) Submit(ctx context.Context, submission Submission) (domain.Receipt, error) {
	if err := ctx.Err(); err != nil {
		return domain.Receipt{}, err
	}
	started := time.Now()

	complaint := domain.Complaint{
		Status:        domain.StatusPending,
		Description:   submission.Description,
		ExtractedText: truncateRunes(submission.ExtractedText, extractedTextStoreLimit),
		SubmittedAt:   started.UTC(),
	}

	if submission.Attachment != nil {
		if err := s.validateAttachment(submission.Attachment); err != nil {
			s.monitor.IncrRejectedUploads()
			return domain.Receipt{}, err
		}
		complaint.FileName = submission.Attachment.FileName
		complaint.FileType = submission.Attachment.DeclaredType
		complaint.FileSize = int64(len(submission.Attachment.Data))
	}

	combined := submission.ExtractedText + " " + submission.Description
	result := s.engine.ClassifyComplaint(combined)
	complaint.Category = result.Category
	complaint.Urgency = result.Urgency
	complaint.Department = result.Department
	complaint.Sentiment = result.Sentiment

	saved, err := s.repository.Save(complaint)
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("saving complaint: %w", err)
	}
	if err := s.index.Index(saved); err != nil {
		// The record is already durable; a stale index only degrades search.
		s.log.Error("Failed to index complaint", "id", saved.ID, "error", err)
	}

	s.monitor.IncrComplaintsProcessed()
	elapsed := time.Since(started).Seconds()
	s.log.Info("Complaint processed",
		"id", saved.ID,
		"category", saved.Category,
		"urgency", saved.Urgency,
		"department", saved.Department,
		"elapsed_s", elapsed,
	)

	return domain.Receipt{
		ID:         saved.ID,
		Result:     result,
		Category:   saved.Category,
		Urgency:    saved.Urgency.String(),
		Department: saved.Department,
		Sentiment:  saved.Sentiment,
		Acknowledgment: fmt.Sprintf(
			"Complaint ID: %d received successfully. Category: %s, Urgency: %s. Forwarded to: %s. Processing time: %.2fs",
			saved.ID, saved.Category, saved.Urgency, saved.Department, elapsed,
		),
		ProcessingTime: elapsed,
	}, nil
}

func (s *ComplaintService) validateAttachment(attachment *Attachment) error {
	if int64(len(attachment.Data)) > s.maxUploadBytes {
		return fmt.Errorf("%w: max %d MB", apperrors.ErrFileTooLarge, s.maxUploadBytes/1024/1024)
	}
	if !lo.Contains(supportedMediaTypes, attachment.DeclaredType) {
		return fmt.Errorf("%w: %s", apperrors.ErrUnsupportedMedia, attachment.DeclaredType)
	}
	detected := mimetype.Detect(attachment.Data)
	if !detected.Is(attachment.DeclaredType) {
		return fmt.Errorf("%w: declared %s but content is %s",
			apperrors.ErrUnsupportedMedia, attachment.DeclaredType, detected.String())
	}
	return nil
}

func (s *ComplaintService) Status(id uint64) (domain.Complaint, error) {
	return s.repository.Get(id)
}

func (s *ComplaintService) UpdateStatus(id uint64, status domain.Status) (domain.Complaint, error) {
	updated, err := s.repository.UpdateStatus(id, status)
	if err != nil {
		return domain.Complaint{}, err
	}
	s.log.Info("Complaint status updated", "id", id, "status", status)
	return updated, nil
}

func (s *ComplaintService) List(skip, limit int) (ListResult, error) {
	complaints, total, err := s.repository.List(skip, limit)
	if err != nil {
		return ListResult{}, err
	}
	return ListResult{Complaints: complaints, Total: total}, nil
}

func (s *ComplaintService) Search(ctx context.Context, terms string, category domain.Category) (SearchResult, error) {
	hits, total, err := s.index.Search(ctx, search.Query{Terms: terms, Category: category})
	if err != nil {
		return SearchResult{}, err
	}
	return SearchResult{Hits: hits, Total: total}, nil
}

func (s *ComplaintService) Stats() (Stats, error) {
	agg, err := s.repository.Aggregate()
	if err != nil {
		return Stats{}, err
	}
	return Stats{
		TotalComplaints:       agg.Total,
		UniqueCategories:      len(agg.PerCategory),
		HighUrgencyPercentage: percentage(agg.HighUrgency, agg.Total),
	}, nil
}

func (s *ComplaintService) Trends() (Trends, error) {
	agg, err := s.repository.Aggregate()
	if err != nil {
		return Trends{}, err
	}
	return Trends{Trends: trendItems(agg), TotalComplaints: agg.Total}, nil
}

func (s *ComplaintService) UrgencyDistribution() (UrgencyDistribution, error) {
	agg, err := s.repository.Aggregate()
	if err != nil {
		return UrgencyDistribution{}, err
	}

	levels := lo.Keys(agg.PerUrgency)
	sort.Strings(levels)
	buckets := lo.Map(levels, func(level string, _ int) UrgencyBucket {
		return UrgencyBucket{
			UrgencyLevel: level,
			Count:        agg.PerUrgency[level],
			Percentage:   percentage(agg.PerUrgency[level], agg.Total),
		}
	})
	return UrgencyDistribution{Distribution: buckets, TotalComplaints: agg.Total}, nil
}

func (s *ComplaintService) DepartmentStats() (DepartmentStats, error) {
	agg, err := s.repository.Aggregate()
	if err != nil {
		return DepartmentStats{}, err
	}

	departments := lo.Keys(agg.PerDepartment)
	sort.Strings(departments)
	stats := lo.Map(departments, func(department string, _ int) DepartmentStat {
		total := agg.PerDepartment[department]
		return DepartmentStat{
			Department:                  department,
			TotalComplaints:             total,
			HighUrgencyPercentage:       percentage(agg.HighUrgencyByDept[department], total),
			NegativeSentimentPercentage: percentage(agg.NegativeSentimentByDep[department], total),
		}
	})
	return DepartmentStats{Departments: stats}, nil
}

// ExportTrendsCSV streams the category trend rollup as CSV with a
// Category,Count,Percentage header.
func (s *ComplaintService) ExportTrendsCSV(w io.Writer) error {
	agg, err := s.repository.Aggregate()
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"Category", "Count", "Percentage"}); err != nil {
		return err
	}
	for _, item := range trendItems(agg) {
		row := []string{
			item.Category,
			strconv.Itoa(item.Count),
			strconv.FormatFloat(item.Percentage, 'f', 2, 64),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func trendItems(agg repositories.Aggregate) []TrendItem {
	return lo.Map(agg.Categories(), func(category domain.Category, _ int) TrendItem {
		count := agg.PerCategory[category]
		return TrendItem{
			Category:   string(category),
			Count:      count,
			Percentage: percentage(count, agg.Total),
		}
	})
}

func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*100*100) / 100
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

