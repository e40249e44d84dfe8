package tasks

import (
	"context"
	"fmt"
	"testing"
	"time"
)

type failingTask struct {
	Task
	attempts int
}

func (t *failingTask) Execute(ctx context.Context) error {
	t.attempts++
	return fmt.Errorf("transient failure")
}

func TestSchedulerStopWaitsForPendingRetry(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		ctx:       ctx,
		cancel:    cancel,
		taskQueue: make(chan TaskInterface, 1),
	}

	task := &failingTask{Task: NewTask(TaskTypeFetchListing, "cs.LG")}
	s.executeTask(0, task)

	if task.attempts != 1 {
		t.Fatalf("Expected 1 execution attempt, got %d", task.attempts)
	}
	if task.GetRetryCount() != 1 {
		t.Fatalf("Expected retry count 1 after first failure, got %d", task.GetRetryCount())
	}

	// Stop while the retry goroutine is still sleeping out its delay. It
	// must be waited for, and must observe the cancelled context instead
	// of sending on the closed queue.
	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Stop did not return while a retry was pending")
	}

	if len(s.taskQueue) != 0 {
		t.Errorf("Expected no re-enqueued task after shutdown, got %d", len(s.taskQueue))
	}
}
