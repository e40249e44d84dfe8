package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/lysyi3m/arxiv-comb/app/arxiv"
	"github.com/lysyi3m/arxiv-comb/app/cfg"
	"github.com/lysyi3m/arxiv-comb/app/database"
	"github.com/lysyi3m/arxiv-comb/app/mail"
	"github.com/lysyi3m/arxiv-comb/app/profile"
	"github.com/lysyi3m/arxiv-comb/app/tags"
)

var _ TaskSchedulerInterface = (*Scheduler)(nil)

type Scheduler struct {
	profileCache *profile.Cache
	source       arxiv.Source
	pipeline     *tags.Pipeline
	listingRepo  database.ListingRepository
	subRepo      database.SubmissionRepository
	digestRepo   database.DigestRepository
	builder      *DigestBuilder
	renderer     *mail.Renderer
	sender       mail.SenderInterface
	showCut      arxiv.TagCut
	interval     time.Duration
	workerCount  int
	ctx          context.Context
	cancel       context.CancelFunc
	wg           sync.WaitGroup
	taskQueue    chan TaskInterface
}

func NewScheduler(profileCache *profile.Cache, source arxiv.Source, pipeline *tags.Pipeline,
	listingRepo database.ListingRepository, subRepo database.SubmissionRepository,
	digestRepo database.DigestRepository, builder *DigestBuilder,
	sender mail.SenderInterface) TaskSchedulerInterface {
	ctx, cancel := context.WithCancel(context.Background())
	cfg := cfg.Get()

	return &Scheduler{
		profileCache: profileCache,
		source:       source,
		pipeline:     pipeline,
		listingRepo:  listingRepo,
		subRepo:      subRepo,
		digestRepo:   digestRepo,
		builder:      builder,
		renderer:     mail.NewRenderer(),
		sender:       sender,
		showCut:      arxiv.TagCut{Threshold: cfg.ShowTagThreshold, Cap: cfg.ShowTagCap},
		interval:     time.Duration(cfg.SchedulerInterval) * time.Second,
		workerCount:  cfg.WorkerCount,
		ctx:          ctx,
		cancel:       cancel,
		taskQueue:    make(chan TaskInterface, 300),
	}
}

func (s *Scheduler) Start() {
	for i := 0; i < s.workerCount; i++ {
		s.wg.Add(1)
		go s.worker(i)
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.enqueueTasks()

		for {
			select {
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				s.enqueueTasks()
			}
		}
	}()

}

func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	close(s.taskQueue)
}

func (s *Scheduler) EnqueueTask(task TaskInterface) error {
	select {
	case s.taskQueue <- task:
		return nil
	case <-s.ctx.Done():
		return s.ctx.Err()
	default:
		return fmt.Errorf("task queue is full")
	}
}

// enqueueTasks schedules the day's work: a fetch per category whose
// listing for the current announce date is not stored yet, then a digest
// per enabled profile once all of its categories are stored.
func (s *Scheduler) enqueueTasks() {
	profiles := s.profileCache.GetEnabledProfiles()
	if len(profiles) == 0 {
		slog.Debug("No enabled profiles found")
		return
	}

	announceDate := arxiv.ExpectedAnnounceDate(time.Now(), s.source.Mode())
	sourceMode := string(s.source.Mode())

	stored := make(map[string]bool)
	for _, category := range s.profileCache.Categories() {
		listing, err := s.listingRepo.GetListing(category, sourceMode, announceDate)
		if err != nil {
			slog.Warn("Failed to look up listing, skipping", "category", category, "error", err)
			continue
		}
		if listing != nil {
			stored[category] = true
			continue
		}

		fetchTask := NewFetchListingTask(category, s.source, s.pipeline, s.listingRepo, s.subRepo)
		if err := s.EnqueueTask(fetchTask); err != nil {
			slog.Warn("Failed to enqueue FetchListingTask", "category", category, "error", err)
		}
	}

	for _, p := range profiles {
		ready := true
		for _, category := range p.Categories {
			if !stored[category] {
				ready = false
				break
			}
		}
		if !ready {
			slog.Debug("Profile listings not stored yet, skipping digest", "profile", p.Name, "announce_date", announceDate)
			continue
		}

		digest, err := s.digestRepo.GetDigest(p.Name, announceDate)
		if err != nil {
			slog.Warn("Failed to look up digest, skipping", "profile", p.Name, "error", err)
			continue
		}
		if digest != nil && digest.Status == database.DigestStatusSent {
			continue
		}

		digestTask := NewSendDigestTask(p, announceDate, s.builder, s.digestRepo, s.renderer, s.sender, s.showCut)
		if err := s.EnqueueTask(digestTask); err != nil {
			slog.Warn("Failed to enqueue SendDigestTask", "profile", p.Name, "error", err)
		}
	}
}

func (s *Scheduler) worker(id int) {
	defer s.wg.Done()

	for {
		select {
		case task, ok := <-s.taskQueue:
			if !ok {
				return
			}
			s.executeTask(id, task)

		case <-s.ctx.Done():
			return
		}
	}
}

func (s *Scheduler) executeTask(workerID int, task TaskInterface) {
	task.Start()

	taskCtx, cancel := context.WithTimeout(s.ctx, 5*time.Minute)
	defer cancel()

	err := task.Execute(taskCtx)

	if err != nil {
		slog.Error("Worker task execution failed", "worker_id", workerID, "type", string(task.GetType()), "id", task.GetID(), "retry_count", task.GetRetryCount(), "error", err)

		if task.CanRetry() {
			task.IncrementRetryCount()
			retryDelay := time.Duration(1<<uint(task.GetRetryCount()-1)) * time.Second
			if retryDelay > 30*time.Second {
				retryDelay = 30 * time.Second
			}

			slog.Warn("Task retry scheduled", "type", string(task.GetType()), "subject", task.GetSubject(), "retry_count", task.GetRetryCount(), "max_retries", task.GetMaxRetries(), "delay", retryDelay.String())

			// Tracked in the WaitGroup so Stop cannot close the queue
			// while a retry is pending.
			s.wg.Add(1)
			go func() {
				defer s.wg.Done()
				time.Sleep(retryDelay)
				select {
				case <-s.ctx.Done():
					slog.Debug("Scheduler stopped, skipping task retry", "type", string(task.GetType()), "id", task.GetID())
					return
				default:
					if retryErr := s.EnqueueTask(task); retryErr != nil {
						slog.Error("Failed to re-enqueue task for retry", "type", string(task.GetType()), "id", task.GetID(), "retry_count", task.GetRetryCount(), "error", retryErr)
					}
				}
			}()
		} else {
			slog.Error("Task failed after maximum retries", "type", string(task.GetType()), "id", task.GetID(), "retry_count", task.GetRetryCount(), "max_retries", task.GetMaxRetries(), "last_error", err)
		}
	}
}
