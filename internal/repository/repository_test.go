package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStrikeRepository(t *testing.T) {
	repo := NewStrikeRepository()

	assert.Equal(t, 0, repo.Count("g1", "u1"))
	assert.Equal(t, 1, repo.Increment("g1", "u1"))
	assert.Equal(t, 2, repo.Increment("g1", "u1"))
	assert.Equal(t, 3, repo.Increment("g1", "u1"))

	// Separate pairs do not interfere.
	assert.Equal(t, 1, repo.Increment("g1", "u2"))
	assert.Equal(t, 1, repo.Increment("g2", "u1"))
	assert.Equal(t, 3, repo.Count("g1", "u1"))
	assert.Equal(t, 3, repo.ActiveCount())

	repo.Clear("g1", "u1")
	assert.Equal(t, 0, repo.Count("g1", "u1"))
	assert.Equal(t, 2, repo.ActiveCount())

	// Clearing an absent entry is a no-op.
	repo.Clear("g9", "u9")
	assert.Equal(t, 2, repo.ActiveCount())
}

func TestDuplicateRepository_Observe(t *testing.T) {
	repo := NewDuplicateRepository(time.Minute)
	now := time.Now()

	assert.Equal(t, 1, repo.Observe("g1", "u1", "hello there", now))
	assert.Equal(t, 2, repo.Observe("g1", "u1", "hello there", now.Add(time.Second)))
	assert.Equal(t, 3, repo.Observe("g1", "u1", "hello there", now.Add(2*time.Second)))

	// Different text resets.
	assert.Equal(t, 1, repo.Observe("g1", "u1", "other text", now.Add(3*time.Second)))

	// Same text after the window elapsed does not carry the old count over.
	assert.Equal(t, 1, repo.Observe("g1", "u1", "other text", now.Add(2*time.Minute)))
}

func TestDuplicateRepository_Sweep(t *testing.T) {
	repo := NewDuplicateRepository(time.Minute)
	now := time.Now()

	repo.Observe("g1", "u1", "aaaaa", now.Add(-10*time.Minute))
	repo.Observe("g1", "u2", "bbbbb", now.Add(-30*time.Second))

	removed := repo.Sweep(now, 3*time.Minute)
	assert.Equal(t, 1, removed)

	// The surviving entry still counts up.
	assert.Equal(t, 2, repo.Observe("g1", "u2", "bbbbb", now))
	// The swept entry starts from scratch.
	assert.Equal(t, 1, repo.Observe("g1", "u1", "aaaaa", now))
}

func TestAdminCacheRepository(t *testing.T) {
	repo := NewAdminCacheRepository(5 * time.Minute)
	now := time.Now()

	assert.False(t, repo.IsNotAdmin("g1", now))

	repo.MarkNotAdmin("g1", now)
	assert.True(t, repo.IsNotAdmin("g1", now.Add(time.Minute)))
	assert.False(t, repo.IsNotAdmin("g1", now.Add(6*time.Minute)))
	assert.False(t, repo.IsNotAdmin("g2", now))

	removed := repo.Sweep(now.Add(6 * time.Minute))
	assert.Equal(t, 1, removed)
	assert.Equal(t, 0, repo.Sweep(now.Add(6*time.Minute)))
}
