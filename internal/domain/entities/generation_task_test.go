package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerationTask_MarkDispatched(t *testing.T) {
	now := time.Now()

	t.Run("2xx直接进入completed", func(t *testing.T) {
		task := &GenerationTask{Status: TaskStatusPending}
		task.MarkDispatched(200, now)

		assert.Equal(t, TaskStatusCompleted, task.Status)
		require.NotNil(t, task.StatusCode)
		assert.Equal(t, 200, *task.StatusCode)
		assert.True(t, task.IsTerminal())
	})

	t.Run("非2xx停在dispatched", func(t *testing.T) {
		task := &GenerationTask{Status: TaskStatusPending}
		task.MarkDispatched(429, now)

		assert.Equal(t, TaskStatusDispatched, task.Status)
		require.NotNil(t, task.StatusCode)
		assert.Equal(t, 429, *task.StatusCode)
		assert.False(t, task.IsTerminal())
	})
}

func TestGenerationTask_MarkFailed(t *testing.T) {
	task := &GenerationTask{Status: TaskStatusPending}
	task.MarkFailed("connection refused", time.Now())

	assert.Equal(t, TaskStatusFailed, task.Status)
	require.NotNil(t, task.ErrorMessage)
	assert.Equal(t, "connection refused", *task.ErrorMessage)
	assert.True(t, task.IsTerminal())
}
