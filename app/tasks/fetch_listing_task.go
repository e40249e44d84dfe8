package tasks

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lysyi3m/arxiv-comb/app/arxiv"
	"github.com/lysyi3m/arxiv-comb/app/database"
	"github.com/lysyi3m/arxiv-comb/app/tags"
)

type FetchListingTask struct {
	Task
	Category    string
	source      arxiv.Source
	pipeline    *tags.Pipeline
	listingRepo database.ListingRepository
	subRepo     database.SubmissionRepository
}

func NewFetchListingTask(category string, source arxiv.Source, pipeline *tags.Pipeline,
	listingRepo database.ListingRepository, subRepo database.SubmissionRepository) *FetchListingTask {
	return &FetchListingTask{
		Task:        NewTask(TaskTypeFetchListing, category),
		Category:    category,
		source:      source,
		pipeline:    pipeline,
		listingRepo: listingRepo,
		subRepo:     subRepo,
	}
}

func (t *FetchListingTask) Execute(ctx context.Context) error {

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	collection, err := t.source.Fetch(ctx, t.Category)
	if err != nil {
		return fmt.Errorf("failed to fetch submissions: %w", err)
	}

	if len(collection.Submissions) == 0 {
		slog.Info("Task completed",
			"type", "FetchListing",
			"category", t.Category,
			"duration", t.GetDuration(),
			"total", 0)
		return nil
	}

	tagged := t.pipeline.Run(collection.Submissions)

	announceDate := tagged[0].AnnounceDate
	listingID, err := t.listingRepo.UpsertListing(t.Category, string(t.source.Mode()), announceDate)
	if err != nil {
		return fmt.Errorf("failed to store listing: %w", err)
	}

	if err := t.subRepo.StoreSubmissions(listingID, tagged); err != nil {
		return fmt.Errorf("failed to store submissions: %w", err)
	}

	slog.Info("Task completed",
		"type", "FetchListing",
		"category", t.Category,
		"announce_date", announceDate,
		"duration", t.GetDuration(),
		"total", len(tagged))

	return nil
}
