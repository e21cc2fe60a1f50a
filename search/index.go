// Package search maintains the full-text complaint index. Badger remains
// the source of truth; the Bluge index only stores enough per document to
// render a search hit and to point back at the stored record.
package search

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/blugelabs/bluge"

	"rail-madad/domain"
)

type IComplaintIndex interface {
	Index(complaint domain.Complaint) error
	Search(ctx context.Context, query Query) ([]Hit, uint64, error)
}

type ComplaintIndex struct {
	writer *bluge.Writer
	log    *slog.Logger
	limit  int
}

// Query carries the parsed search parameters, decoupled from the HTTP layer.
type Query struct {
	Terms    string
	Category domain.Category // optional filter, empty means all
}

// Hit is one search result row.
type Hit struct {
	ID          uint64  `json:"id"`
	Category    string  `json:"category"`
	Department  string  `json:"department"`
	Urgency     string  `json:"urgency"`
	Description string  `json:"description"`
	Score       float64 `json:"score"`
}

func NewComplaintIndex(writer *bluge.Writer, log *slog.Logger, limit int) *ComplaintIndex {
	return &ComplaintIndex{writer: writer, log: log, limit: limit}
}

// Index upserts one complaint document. The description and the OCR text are
// folded into a single searchable field; taxonomy fields are keywords so
// filters stay exact-match.
func (i *ComplaintIndex) Index(complaint domain.Complaint) error {
	docID := strconv.FormatUint(complaint.ID, 10)

	text := complaint.Description
	if complaint.ExtractedText != "" {
		text += " " + complaint.ExtractedText
	}

	doc := bluge.NewDocument(docID)
	doc.AddField(bluge.NewTextField("text", text).StoreValue())
	doc.AddField(bluge.NewKeywordField("category", string(complaint.Category)).StoreValue())
	doc.AddField(bluge.NewKeywordField("department", complaint.Department).StoreValue())
	doc.AddField(bluge.NewKeywordField("urgency", complaint.Urgency.String()).StoreValue())

	if err := i.writer.Update(doc.ID(), doc); err != nil {
		return fmt.Errorf("indexing complaint %d: %w", complaint.ID, err)
	}
	return nil
}

// Search runs a match query over the text field, optionally narrowed to one
// category, and returns hits with the total match count.
func (i *ComplaintIndex) Search(ctx context.Context, query Query) ([]Hit, uint64, error) {
	reader, err := i.writer.Reader()
	if err != nil {
		return nil, 0, fmt.Errorf("opening index reader: %w", err)
	}
	defer func() {
		if err := reader.Close(); err != nil {
			i.log.Warn("Failed to close index reader", "error", err)
		}
	}()

	boolean := bluge.NewBooleanQuery().
		AddMust(bluge.NewMatchQuery(query.Terms).SetField("text"))
	if query.Category != "" {
		boolean.AddMust(bluge.NewTermQuery(string(query.Category)).SetField("category"))
	}

	request := bluge.NewTopNSearch(i.limit, boolean).WithStandardAggregations()
	iterator, err := reader.Search(ctx, request)
	if err != nil {
		return nil, 0, fmt.Errorf("searching complaints: %w", err)
	}

	var hits []Hit
	for {
		match, err := iterator.Next()
		if err != nil {
			return nil, 0, err
		}
		if match == nil {
			break
		}

		hit := Hit{Score: match.Score}
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			switch field {
			case "_id":
				hit.ID, _ = strconv.ParseUint(string(value), 10, 64)
			case "text":
				hit.Description = string(value)
			case "category":
				hit.Category = string(value)
			case "department":
				hit.Department = string(value)
			case "urgency":
				hit.Urgency = string(value)
			}
			return true
		})
		if err != nil {
			return nil, 0, err
		}
		hits = append(hits, hit)
	}

	return hits, iterator.Aggregations().Count(), nil
}
