package repositories

import (
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"

	apperrors "rail-madad/errors"

	"rail-madad/domain"
)

func newTestRepository(t *testing.T) *ComplaintRepository {
	t.Helper()
	req := require.New(t)

	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	t.Cleanup(func() { _ = db.Close() })

	repo, err := NewComplaintRepository(db, slog.Default())
	req.NoError(err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func sampleComplaint(category domain.Category, urgency domain.Urgency) domain.Complaint {
	return domain.Complaint{
		Category:    category,
		Urgency:     urgency,
		Department:  "Housekeeping",
		Sentiment:   domain.SentimentNegative,
		Status:      domain.StatusPending,
		Description: "the coach floor is dirty",
		SubmittedAt: time.Now().UTC(),
	}
}

func TestComplaintRepository_SaveAssignsSequentialIDs(t *testing.T) {
	req := require.New(t)
	repo := newTestRepository(t)

	first, err := repo.Save(sampleComplaint(domain.CategoryCleanliness, domain.UrgencyMedium))
	req.NoError(err)
	second, err := repo.Save(sampleComplaint(domain.CategoryDamage, domain.UrgencyHigh))
	req.NoError(err)

	req.Equal(uint64(1), first.ID)
	req.Equal(uint64(2), second.ID)
}

func TestComplaintRepository_GetRoundTrip(t *testing.T) {
	req := require.New(t)
	repo := newTestRepository(t)

	saved, err := repo.Save(sampleComplaint(domain.CategoryCleanliness, domain.UrgencyMedium))
	req.NoError(err)

	fetched, err := repo.Get(saved.ID)
	req.NoError(err)
	req.Equal(saved.Category, fetched.Category)
	req.Equal(saved.Urgency, fetched.Urgency)
	req.Equal(saved.Description, fetched.Description)
	req.Equal(domain.StatusPending, fetched.Status)
}

func TestComplaintRepository_GetMissing(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.Get(42)
	require.ErrorIs(t, err, apperrors.ErrComplaintNotFound)
}

func TestComplaintRepository_ListPaginates(t *testing.T) {
	req := require.New(t)
	repo := newTestRepository(t)

	for i := 0; i < 5; i++ {
		_, err := repo.Save(sampleComplaint(domain.CategoryCleanliness, domain.UrgencyLow))
		req.NoError(err)
	}

	page, total, err := repo.List(2, 2)
	req.NoError(err)
	req.Equal(5, total)
	req.Len(page, 2)
	req.Equal(uint64(3), page[0].ID)
	req.Equal(uint64(4), page[1].ID)

	tail, total, err := repo.List(4, 10)
	req.NoError(err)
	req.Equal(5, total)
	req.Len(tail, 1)
	req.Equal(uint64(5), tail[0].ID)
}

func TestComplaintRepository_UpdateStatus(t *testing.T) {
	req := require.New(t)
	repo := newTestRepository(t)

	saved, err := repo.Save(sampleComplaint(domain.CategorySafety, domain.UrgencyHigh))
	req.NoError(err)

	updated, err := repo.UpdateStatus(saved.ID, domain.StatusResolved)
	req.NoError(err)
	req.Equal(domain.StatusResolved, updated.Status)

	fetched, err := repo.Get(saved.ID)
	req.NoError(err)
	req.Equal(domain.StatusResolved, fetched.Status)

	_, err = repo.UpdateStatus(saved.ID, domain.Status("nonsense"))
	req.ErrorIs(err, apperrors.ErrInvalidStatus)

	_, err = repo.UpdateStatus(999, domain.StatusClosed)
	req.ErrorIs(err, apperrors.ErrComplaintNotFound)
}

func TestComplaintRepository_Aggregate(t *testing.T) {
	req := require.New(t)
	repo := newTestRepository(t)

	seed := []domain.Complaint{
		sampleComplaint(domain.CategoryCleanliness, domain.UrgencyMedium),
		sampleComplaint(domain.CategoryCleanliness, domain.UrgencyHigh),
		sampleComplaint(domain.CategoryDamage, domain.UrgencyHigh),
	}
	for _, c := range seed {
		_, err := repo.Save(c)
		req.NoError(err)
	}

	agg, err := repo.Aggregate()
	req.NoError(err)
	req.Equal(3, agg.Total)
	req.Equal(2, agg.PerCategory[domain.CategoryCleanliness])
	req.Equal(1, agg.PerCategory[domain.CategoryDamage])
	req.Equal(2, agg.HighUrgency)
	req.Equal(2, agg.PerUrgency["high"])
	req.Equal([]domain.Category{domain.CategoryCleanliness, domain.CategoryDamage}, agg.Categories())
}
