package permission

import (
	"context"
	"errors"
	"testing"

	"patient-transport-backend/internal/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockGrantStore holds grants per user id
type MockGrantStore struct {
	Grants map[uint][]string
	Err    error
	Calls  []string
}

func (m *MockGrantStore) UserHasPermission(ctx context.Context, userID uint, name string) (bool, error) {
	m.Calls = append(m.Calls, name)
	if m.Err != nil {
		return false, m.Err
	}
	for _, g := range m.Grants[userID] {
		if g == name {
			return true, nil
		}
	}
	return false, nil
}

func TestChecker_Require(t *testing.T) {
	store := &MockGrantStore{Grants: map[uint][]string{1: {ViewPatients}}}
	checker := NewChecker(store, zap.NewNop())
	ctx := context.Background()

	assert.NoError(t, checker.Require(ctx, NewActor(1), ViewPatients, "denied"))

	err := checker.Require(ctx, NewActor(1), CreatePatients, "cannot create patients")
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindPermissionDenied))
	assert.Equal(t, "cannot create patients", err.Error())

	err = checker.Require(ctx, NewActor(2), ViewPatients, "denied")
	assert.True(t, apperror.Is(err, apperror.KindPermissionDenied))
}

func TestChecker_ParentPermission(t *testing.T) {
	store := &MockGrantStore{Grants: map[uint][]string{1: {CreatePatients}}}
	checker := NewChecker(store, zap.NewNop())
	ctx := context.Background()

	// the user cannot view cities directly
	err := checker.Require(ctx, NewActor(1), ViewCities, "denied")
	assert.True(t, apperror.Is(err, apperror.KindPermissionDenied))

	// but can while running under patient creation
	actor := NewActor(1).WithParent(CreatePatients)
	assert.NoError(t, checker.Require(ctx, actor, ViewCities, "denied"))
	assert.Equal(t, CreatePatients, store.Calls[len(store.Calls)-1])

	// the parent does not leak back into the calling actor
	assert.Equal(t, ViewCities, NewActor(1).Effective(ViewCities))
}

func TestChecker_ZeroUserNeverAllowed(t *testing.T) {
	store := &MockGrantStore{}
	checker := NewChecker(store, zap.NewNop())

	ok, err := checker.HasPermission(context.Background(), 0, ViewCountries)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, store.Calls)
}

func TestChecker_StoreFailure(t *testing.T) {
	store := &MockGrantStore{Err: errors.New("db down")}
	checker := NewChecker(store, zap.NewNop())

	err := checker.Require(context.Background(), NewActor(1), ViewCountries, "denied")
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindInternal))
}

func TestAll_Unique(t *testing.T) {
	seen := map[string]bool{}
	for _, name := range All() {
		assert.False(t, seen[name], "duplicate permission %s", name)
		seen[name] = true
	}
	assert.Len(t, seen, 33)
}
