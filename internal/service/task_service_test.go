package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atozgarments/garmenttrack/internal/models"
	"github.com/atozgarments/garmenttrack/internal/notify"
	"github.com/atozgarments/garmenttrack/internal/repository"
	"github.com/atozgarments/garmenttrack/internal/session"
)

func newTaskService(t *testing.T, store *memTaskStore) (*TaskService, *recordingAlerter, *notify.Center) {
	t.Helper()
	alerts := &recordingAlerter{}
	notices := notify.NewCenter()
	svc := NewTaskService(store, newTestSession(t), alerts, notices, TaskNotifyPolicy)
	return svc, alerts, notices
}

func TestTaskService_AddOrdering(t *testing.T) {
	svc, _, _ := newTaskService(t, &memTaskStore{})
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		_, err := svc.Add(ctx, repository.TaskInput{Title: title, Status: models.TaskStatusTodo, Priority: models.PriorityMedium})
		require.NoError(t, err)
	}

	tasks := svc.Tasks()
	require.Len(t, tasks, 3)
	assert.Equal(t, "third", tasks[0].Title)
	assert.Equal(t, "second", tasks[1].Title)
	assert.Equal(t, "first", tasks[2].Title)
}

func TestTaskService_AddRequiresIdentity(t *testing.T) {
	store := &memTaskStore{}
	alerts := &recordingAlerter{}
	svc := NewTaskService(store, newSignedOutSession(t), alerts, notify.NewCenter(), TaskNotifyPolicy)

	_, err := svc.Add(context.Background(), repository.TaskInput{Title: "x", Status: models.TaskStatusTodo, Priority: models.PriorityLow})
	require.ErrorIs(t, err, session.ErrAuthRequired)

	assert.Zero(t, store.calls, "no remote call should be attempted without an identity")
	assert.Empty(t, svc.Tasks())
	assert.Equal(t, 1, alerts.errorCount())
}

func TestTaskService_LoadWaitsForReadyProvider(t *testing.T) {
	store := &memTaskStore{}
	notReady := session.NewProvider(nil)
	svc := NewTaskService(store, notReady, &recordingAlerter{}, notify.NewCenter(), TaskNotifyPolicy)

	require.NoError(t, svc.Load(context.Background()))
	assert.Zero(t, store.calls, "no fetch before the identity check completes")
	assert.True(t, svc.Loading())
}

func TestTaskService_LoadReplacesCache(t *testing.T) {
	store := &memTaskStore{}
	svc, _, _ := newTaskService(t, store)
	ctx := context.Background()

	_, err := svc.Add(ctx, repository.TaskInput{Title: "seed", Status: models.TaskStatusTodo, Priority: models.PriorityLow})
	require.NoError(t, err)

	require.NoError(t, svc.Load(ctx))
	assert.False(t, svc.Loading())
	assert.Len(t, svc.Tasks(), 1)
}

func TestTaskService_ToggleCycle(t *testing.T) {
	svc, _, _ := newTaskService(t, &memTaskStore{})
	ctx := context.Background()

	created, err := svc.Add(ctx, repository.TaskInput{Title: "cycle", Status: models.TaskStatusTodo, Priority: models.PriorityHigh})
	require.NoError(t, err)

	expected := []string{
		models.TaskStatusInProgress,
		models.TaskStatusCompleted,
		models.TaskStatusTodo,
	}
	for _, want := range expected {
		task, err := svc.Toggle(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, want, task.Status)
	}
}

func TestTaskService_UpdateUnknownIDLeavesCache(t *testing.T) {
	svc, alerts, _ := newTaskService(t, &memTaskStore{})
	ctx := context.Background()

	_, err := svc.Add(ctx, repository.TaskInput{Title: "keep", Status: models.TaskStatusTodo, Priority: models.PriorityLow})
	require.NoError(t, err)

	status := models.TaskStatusCompleted
	_, err = svc.Update(ctx, "missing", repository.TaskUpdateInput{Status: &status})
	require.ErrorIs(t, err, repository.ErrNotFound)

	tasks := svc.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, models.TaskStatusTodo, tasks[0].Status)
	assert.Equal(t, 1, alerts.errorCount())
}

func TestTaskService_UpdateReplacesInPlace(t *testing.T) {
	svc, _, _ := newTaskService(t, &memTaskStore{})
	ctx := context.Background()

	first, err := svc.Add(ctx, repository.TaskInput{Title: "a", Status: models.TaskStatusTodo, Priority: models.PriorityLow})
	require.NoError(t, err)
	_, err = svc.Add(ctx, repository.TaskInput{Title: "b", Status: models.TaskStatusTodo, Priority: models.PriorityLow})
	require.NoError(t, err)

	title := "a renamed"
	_, err = svc.Update(ctx, first.ID, repository.TaskUpdateInput{Title: &title})
	require.NoError(t, err)

	tasks := svc.Tasks()
	require.Len(t, tasks, 2)
	assert.Equal(t, "b", tasks[0].Title, "position of the untouched entry is preserved")
	assert.Equal(t, "a renamed", tasks[1].Title, "updated entry stays in place")
}

func TestTaskService_DeleteIdempotency(t *testing.T) {
	svc, alerts, _ := newTaskService(t, &memTaskStore{})
	ctx := context.Background()

	created, err := svc.Add(ctx, repository.TaskInput{Title: "gone", Status: models.TaskStatusTodo, Priority: models.PriorityLow})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.Empty(t, svc.Tasks())

	err = svc.Delete(ctx, created.ID)
	require.ErrorIs(t, err, repository.ErrNotFound)
	assert.Empty(t, svc.Tasks(), "second delete does not disturb the cache")
	assert.Equal(t, 1, alerts.errorCount())
}

func TestTaskService_NoNotificationsUnderDefaultPolicy(t *testing.T) {
	svc, _, notices := newTaskService(t, &memTaskStore{})
	ctx := context.Background()

	created, err := svc.Add(ctx, repository.TaskInput{Title: "quiet", Status: models.TaskStatusTodo, Priority: models.PriorityLow})
	require.NoError(t, err)

	_, err = svc.Toggle(ctx, created.ID)
	require.NoError(t, err)

	assert.Empty(t, notices.List(), "tasks do not notify under the default policy")
}

func TestTaskService_FailedAddLeavesCache(t *testing.T) {
	store := &memTaskStore{failInsert: true}
	svc, alerts, _ := newTaskService(t, store)

	_, err := svc.Add(context.Background(), repository.TaskInput{Title: "x", Status: models.TaskStatusTodo, Priority: models.PriorityLow})
	require.Error(t, err)

	var remote *repository.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Empty(t, svc.Tasks())
	assert.Equal(t, 1, alerts.errorCount())
}
