package agg

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/gitpulse/gitpulse/internal/contract"
	"github.com/gitpulse/gitpulse/internal/iocache"
	"github.com/gitpulse/gitpulse/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCacheStore for testing (alias for MockCacheStore)
type MockCacheStore = iocache.MockCacheStore

func cachingConfig() *contract.Config {
	return &contract.Config{
		LookbackDays: 30,
		CutoffTime:   time.Date(2026, 7, 24, 12, 0, 0, 0, time.UTC),
	}
}

func TestCheckCacheHit_CacheHit(t *testing.T) {
	mockStore := &MockCacheStore{}
	record := schema.RepositoryRecord{
		Name:    "alpha",
		Path:    "/work/alpha",
		Commits: 5,
	}
	data, _ := json.Marshal(record)

	// Valid cache entry: current version, recent timestamp
	mockStore.On("Get", "test-key").Return(data, currentCacheVersion, time.Now().Unix(), nil)

	actual := checkCacheHit(mockStore, "test-key")
	assert.NotNil(t, actual)
	assert.Equal(t, 5, actual.Commits)
	assert.Equal(t, "alpha", actual.Name)
	mockStore.AssertExpectations(t)
}

func TestCheckCacheHit_CacheMiss_VersionMismatch(t *testing.T) {
	mockStore := &MockCacheStore{}
	data := []byte("{}")

	// Version mismatch
	mockStore.On("Get", "test-key").Return(data, currentCacheVersion-1, time.Now().Unix(), nil)

	actual := checkCacheHit(mockStore, "test-key")
	assert.Nil(t, actual)
	mockStore.AssertExpectations(t)
}

func TestCheckCacheHit_CacheMiss_Stale(t *testing.T) {
	mockStore := &MockCacheStore{}
	data := []byte("{}")

	// Stale entry (older than 7 days)
	staleTime := time.Now().Add(-8 * 24 * time.Hour).Unix()
	mockStore.On("Get", "test-key").Return(data, currentCacheVersion, staleTime, nil)

	actual := checkCacheHit(mockStore, "test-key")
	assert.Nil(t, actual)
	mockStore.AssertExpectations(t)
}

func TestCheckCacheHit_CacheMiss_Error(t *testing.T) {
	mockStore := &MockCacheStore{}

	// Simulate DB error
	mockStore.On("Get", "test-key").Return([]byte{}, 0, int64(0), assert.AnError)

	actual := checkCacheHit(mockStore, "test-key")
	assert.Nil(t, actual)
	mockStore.AssertExpectations(t)
}

func TestCheckCacheHit_CacheMiss_UnmarshalError(t *testing.T) {
	mockStore := &MockCacheStore{}

	// Invalid JSON data
	mockStore.On("Get", "test-key").Return([]byte("invalid json"), currentCacheVersion, time.Now().Unix(), nil)

	actual := checkCacheHit(mockStore, "test-key")
	assert.Nil(t, actual)
	mockStore.AssertExpectations(t)
}

func TestGenerateCacheKey(t *testing.T) {
	mockClient := &contract.MockGitClient{}
	cfg := cachingConfig()

	// Mock GetRepoHash for any repo path
	mockClient.On("GetRepoHash", mock.Anything, mock.AnythingOfType("string")).Return("abcd1234", nil)

	key1 := generateCacheKey(context.Background(), cfg, mockClient, "/test/repo")

	// Key should be a non-empty SHA256 hash
	assert.NotEmpty(t, key1)
	assert.Len(t, key1, 64) // SHA256 hash length

	// Different repository should produce different key
	key2 := generateCacheKey(context.Background(), cfg, mockClient, "/different/repo")
	assert.NotEqual(t, key1, key2)

	// Different window should produce different key
	cfg2 := cfg.CloneWithWindow(7, time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC))
	key3 := generateCacheKey(context.Background(), cfg2, mockClient, "/test/repo")
	assert.NotEqual(t, key1, key3)

	mockClient.AssertExpectations(t)
}

func TestGenerateCacheKey_RepoHashError(t *testing.T) {
	mockClient := &contract.MockGitClient{}
	cfg := cachingConfig()

	// Mock GetRepoHash to return error
	mockClient.On("GetRepoHash", mock.Anything, mock.AnythingOfType("string")).Return("", assert.AnError)

	key := generateCacheKey(context.Background(), cfg, mockClient, "/test/repo")

	// Key should still be generated (with empty repoHash)
	assert.NotEmpty(t, key)
	assert.Len(t, key, 64) // SHA256 hash length

	mockClient.AssertExpectations(t)
}

func TestCachedAggregateRepository_Hit(t *testing.T) {
	ctx := context.Background()
	cfg := cachingConfig()

	cached := schema.RepositoryRecord{Name: "alpha", Path: "/work/alpha", Commits: 3}
	data, _ := json.Marshal(cached)

	mockStore := &MockCacheStore{}
	mockStore.On("Get", mock.AnythingOfType("string")).Return(data, currentCacheVersion, time.Now().Unix(), nil)

	mockManager := &iocache.MockCacheManager{}
	mockManager.On("GetActivityStore").Return(mockStore)

	// Only the key lookup touches git; the log command never runs.
	mockClient := &contract.MockGitClient{}
	mockClient.On("GetRepoHash", ctx, "/work/alpha").Return("abcd1234", nil)

	record, err := CachedAggregateRepository(ctx, cfg, mockClient, mockManager, "/work/alpha")

	assert.NoError(t, err)
	assert.Equal(t, 3, record.Commits)
	mockClient.AssertNotCalled(t, "GetActivityLog", mock.Anything, mock.Anything, mock.Anything)
	mockStore.AssertExpectations(t)
	mockManager.AssertExpectations(t)
}

func TestCachedAggregateRepository_NoStore(t *testing.T) {
	ctx := context.Background()
	cfg := cachingConfig()

	// Without a configured store the aggregation runs directly.
	mockManager := &iocache.MockCacheManager{}
	mockManager.On("GetActivityStore").Return(nil)

	mockClient := &contract.MockGitClient{}
	mockClient.On("GetActivityLog", ctx, "/work/alpha", cfg.CutoffTime).Return(gitLogBasicFixture, nil)

	record, err := CachedAggregateRepository(ctx, cfg, mockClient, mockManager, "/work/alpha")

	assert.NoError(t, err)
	assert.Equal(t, "alpha", record.Name)
	mockClient.AssertNotCalled(t, "GetRepoHash", mock.Anything, mock.Anything)
	mockManager.AssertExpectations(t)
}
