package applicant

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	items   map[int64]Applicant
	updates int
}

func newMemRepo(items ...Applicant) *memRepo {
	r := &memRepo{items: map[int64]Applicant{}}
	for _, a := range items {
		r.items[a.ID] = a
	}
	return r
}

func (r *memRepo) GetByID(_ context.Context, id int64) (Applicant, error) {
	a, ok := r.items[id]
	if !ok {
		return Applicant{}, ErrNotFound
	}
	return a, nil
}

func (r *memRepo) ListAll(context.Context) ([]Applicant, error) {
	out := make([]Applicant, 0, len(r.items))
	for _, a := range r.items {
		out = append(out, a)
	}
	return out, nil
}

func (r *memRepo) UpdateStatus(_ context.Context, id int64, status Status) error {
	a, ok := r.items[id]
	if !ok {
		return ErrNotFound
	}
	a.Status = status
	r.items[id] = a
	r.updates++
	return nil
}

func (r *memRepo) InsertBatch(_ context.Context, batch []Applicant) (int, error) {
	for _, a := range batch {
		r.items[a.ID] = a
	}
	return len(batch), nil
}

func (r *memRepo) DeleteAll(context.Context) error {
	r.items = map[int64]Applicant{}
	return nil
}

func TestApproveAndReject(t *testing.T) {
	repo := newMemRepo(Applicant{ID: 7, Name: "Sarah Johnson", Status: StatusPendingReview})
	uc := NewService(repo)
	ctx := context.Background()

	a, err := uc.Approve(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, a.Status)
	assert.Equal(t, StatusApproved, repo.items[7].Status)

	a, err = uc.Reject(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, StatusRejected, a.Status)
	assert.Equal(t, 2, repo.updates)

	// same status again is a no-op
	_, err = uc.Reject(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.updates)
}

func TestApproveUnknownApplicant(t *testing.T) {
	uc := NewService(newMemRepo())
	_, err := uc.Approve(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestParseEnums(t *testing.T) {
	m, err := ParseJobMatch("Under Performer")
	require.NoError(t, err)
	assert.Equal(t, MatchUnderPerformer, m)
	_, err = ParseJobMatch("under performer")
	assert.Error(t, err)

	s, err := ParseStatus("Pending Review")
	require.NoError(t, err)
	assert.Equal(t, StatusPendingReview, s)
	_, err = ParseStatus("Declined")
	assert.Error(t, err)
}

func TestFilterApply(t *testing.T) {
	items := []Applicant{
		{ID: 1, Name: "John Smith", Email: "john.smith@example.com", JobID: 1, JobMatch: MatchTopPerformer, Status: StatusApproved},
		{ID: 2, Name: "Sarah Johnson", Email: "sarah.johnson@example.com", JobID: 1, JobMatch: MatchPotential, Status: StatusPendingReview},
		{ID: 3, Name: "Michael Brown", Email: "michael.brown@example.com", JobID: 2, JobMatch: MatchTopPerformer, Status: StatusRejected},
	}

	assert.Len(t, Filter{}.Apply(items), 3)

	got := Filter{JobID: 1}.Apply(items)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(2), got[1].ID)

	got = Filter{JobMatch: MatchTopPerformer, Status: StatusRejected}.Apply(items)
	require.Len(t, got, 1)
	assert.Equal(t, int64(3), got[0].ID)

	got = Filter{Query: "johnson"}.Apply(items)
	require.Len(t, got, 1)
	assert.Equal(t, "Sarah Johnson", got[0].Name)

	assert.Empty(t, Filter{JobID: 99}.Apply(items))
	assert.NotNil(t, Filter{JobID: 99}.Apply(items))
}
