package tasks

// TaskSchedulerInterface defines the interface for task scheduling operations.
// Used by the main application to manage background task processing.
// This interface provides task queue management and worker pool control.
// Example usage:
//
//	scheduler := NewScheduler(profileCache, source, pipeline, listingRepo, subRepo, digestRepo, sender)
//	scheduler.Start()
//	defer scheduler.Stop()
//	scheduler.EnqueueTask(NewFetchListingTask(...))
type TaskSchedulerInterface interface {
	Start()
	Stop()
	EnqueueTask(task TaskInterface) error
}
