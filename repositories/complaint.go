package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"

	apperrors "rail-madad/errors"

	"rail-madad/domain"
)

const (
	complaintPrefix = "complaint:"
	sequenceKey     = "complaint:seq"
	// Sequence lease size: IDs are handed out in batches to avoid a disk
	// write per submission. Gaps after a restart are acceptable.
	sequenceBandwidth = 100
)

type IComplaintRepository interface {
	Save(complaint domain.Complaint) (domain.Complaint, error)
	Get(id uint64) (domain.Complaint, error)
	List(skip, limit int) ([]domain.Complaint, int, error)
	UpdateStatus(id uint64, status domain.Status) (domain.Complaint, error)
	Aggregate() (Aggregate, error)
	Close() error
}

type ComplaintRepository struct {
	db  *badger.DB
	seq *badger.Sequence
	log *slog.Logger
}

func NewComplaintRepository(db *badger.DB, log *slog.Logger) (*ComplaintRepository, error) {
	seq, err := db.GetSequence([]byte(sequenceKey), sequenceBandwidth)
	if err != nil {
		return nil, fmt.Errorf("opening complaint sequence: %w", err)
	}
	return &ComplaintRepository{db: db, seq: seq, log: log}, nil
}

// Close releases the ID sequence lease. Call before closing the database.
func (r *ComplaintRepository) Close() error {
	return r.seq.Release()
}

// complaintKey builds "complaint:%09d". Zero padding keeps lexicographical
// key order aligned with numeric ID order, so a plain prefix scan lists
// complaints oldest first.
func complaintKey(id uint64) []byte {
	return []byte(fmt.Sprintf("%s%09d", complaintPrefix, id))
}

// Save assigns the next numeric ID and persists the complaint. The returned
// copy carries the assigned ID; the stored record is never mutated afterwards
// except through UpdateStatus.
func (r *ComplaintRepository) Save(complaint domain.Complaint) (domain.Complaint, error) {
	next, err := r.seq.Next()
	if err != nil {
		return domain.Complaint{}, fmt.Errorf("allocating complaint id: %w", err)
	}
	complaint.ID = next + 1 // sequence starts at zero, public IDs at one

	bytes, err := json.Marshal(complaint)
	if err != nil {
		return domain.Complaint{}, err
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(complaintKey(complaint.ID), bytes)
	})
	if err != nil {
		return domain.Complaint{}, err
	}

	r.log.Debug("Complaint stored", "id", complaint.ID, "category", complaint.Category)
	return complaint, nil
}

func (r *ComplaintRepository) Get(id uint64) (domain.Complaint, error) {
	var complaint domain.Complaint
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(complaintKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(value []byte) error {
			return json.Unmarshal(value, &complaint)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return domain.Complaint{}, apperrors.ErrComplaintNotFound
	}
	if err != nil {
		return domain.Complaint{}, err
	}
	return complaint, nil
}

// List returns a page of complaints in ID order plus the total count.
// The count comes from the same scan: keys outside the requested window are
// only counted, not decoded.
func (r *ComplaintRepository) List(skip, limit int) ([]domain.Complaint, int, error) {
	var complaints []domain.Complaint
	var total int

	err := r.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()

		prefix := []byte(complaintPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if string(it.Item().Key()) == sequenceKey {
				continue
			}
			total++
			if total <= skip || len(complaints) >= limit {
				continue
			}
			err := it.Item().Value(func(value []byte) error {
				var complaint domain.Complaint
				if err := json.Unmarshal(value, &complaint); err != nil {
					return fmt.Errorf("decoding complaint %s: %w", it.Item().Key(), err)
				}
				complaints = append(complaints, complaint)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return complaints, total, nil
}

// UpdateStatus transitions a complaint's lifecycle state atomically and
// returns the updated record.
func (r *ComplaintRepository) UpdateStatus(id uint64, status domain.Status) (domain.Complaint, error) {
	if !domain.ValidStatus(status) {
		return domain.Complaint{}, apperrors.ErrInvalidStatus
	}

	var updated domain.Complaint
	err := r.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(complaintKey(id))
		if err != nil {
			return err
		}
		if err := item.Value(func(value []byte) error {
			return json.Unmarshal(value, &updated)
		}); err != nil {
			return err
		}
		updated.Status = status
		bytes, err := json.Marshal(updated)
		if err != nil {
			return err
		}
		return txn.Set(complaintKey(id), bytes)
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return domain.Complaint{}, apperrors.ErrComplaintNotFound
	}
	if err != nil {
		return domain.Complaint{}, err
	}
	return updated, nil
}

// Aggregate is a single-scan rollup used by the stats and trends endpoints.
type Aggregate struct {
	Total                  int
	PerCategory            map[domain.Category]int
	PerUrgency             map[string]int
	PerDepartment          map[string]int
	HighUrgencyByDept      map[string]int
	NegativeSentimentByDep map[string]int
	HighUrgency            int
}

// Aggregate scans every complaint once and counts per category, urgency, and
// department. Cheap at dashboard scale; revisit with precomputed counters if
// the store ever grows past what a prefix scan can serve interactively.
func (r *ComplaintRepository) Aggregate() (Aggregate, error) {
	agg := Aggregate{
		PerCategory:            map[domain.Category]int{},
		PerUrgency:             map[string]int{},
		PerDepartment:          map[string]int{},
		HighUrgencyByDept:      map[string]int{},
		NegativeSentimentByDep: map[string]int{},
	}

	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(complaintPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if string(it.Item().Key()) == sequenceKey {
				continue
			}
			err := it.Item().Value(func(value []byte) error {
				var complaint domain.Complaint
				if err := json.Unmarshal(value, &complaint); err != nil {
					return err
				}
				agg.Total++
				agg.PerCategory[complaint.Category]++
				agg.PerUrgency[complaint.Urgency.String()]++
				agg.PerDepartment[complaint.Department]++
				if complaint.Urgency == domain.UrgencyHigh {
					agg.HighUrgency++
					agg.HighUrgencyByDept[complaint.Department]++
				}
				if complaint.Sentiment == domain.SentimentNegative {
					agg.NegativeSentimentByDep[complaint.Department]++
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return Aggregate{}, err
	}
	return agg, nil
}

// Categories returns the distinct categories seen so far, sorted for stable
// output.
func (a Aggregate) Categories() []domain.Category {
	keys := lo.Keys(a.PerCategory)
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
