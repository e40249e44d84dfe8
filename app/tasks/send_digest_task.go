package tasks

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lysyi3m/arxiv-comb/app/arxiv"
	"github.com/lysyi3m/arxiv-comb/app/database"
	"github.com/lysyi3m/arxiv-comb/app/mail"
	"github.com/lysyi3m/arxiv-comb/app/profile"
)

type SendDigestTask struct {
	Task
	Profile      *profile.Profile
	AnnounceDate string
	builder      *DigestBuilder
	digestRepo   database.DigestRepository
	renderer     *mail.Renderer
	sender       mail.SenderInterface
	showCut      arxiv.TagCut
}

func NewSendDigestTask(p *profile.Profile, announceDate string, builder *DigestBuilder,
	digestRepo database.DigestRepository, renderer *mail.Renderer, sender mail.SenderInterface,
	showCut arxiv.TagCut) *SendDigestTask {
	return &SendDigestTask{
		Task:         NewTask(TaskTypeSendDigest, p.Name),
		Profile:      p,
		AnnounceDate: announceDate,
		builder:      builder,
		digestRepo:   digestRepo,
		renderer:     renderer,
		sender:       sender,
		showCut:      showCut,
	}
}

func (t *SendDigestTask) Execute(ctx context.Context) error {

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	collection, total, err := t.builder.Run(t.Profile, t.AnnounceDate)
	if err != nil {
		return t.fail(fmt.Errorf("failed to build digest: %w", err))
	}

	// The mailed view is the purified one: public fields only, with the
	// stricter presentation tag cut, same as the digest endpoint.
	relevant := collection.RelevantPurified(t.showCut)

	subject, body, err := t.renderer.Run(t.Profile.Settings.Headline, t.AnnounceDate, relevant, total)
	if err != nil {
		return t.fail(err)
	}

	if err := t.sender.Send(t.Profile.Recipient, subject, body); err != nil {
		return t.fail(err)
	}

	if err := t.digestRepo.MarkDigestSent(t.Profile.Name, t.AnnounceDate, len(relevant)); err != nil {
		return fmt.Errorf("failed to record digest delivery: %w", err)
	}

	slog.Info("Task completed",
		"type", "SendDigest",
		"profile", t.Profile.Name,
		"announce_date", t.AnnounceDate,
		"duration", t.GetDuration(),
		"total", total,
		"relevant", len(relevant))

	return nil
}

// fail records the failure so the stats endpoint can surface it, then
// returns the error for the scheduler's retry handling.
func (t *SendDigestTask) fail(err error) error {
	if recErr := t.digestRepo.MarkDigestFailed(t.Profile.Name, t.AnnounceDate, err.Error()); recErr != nil {
		slog.Warn("Failed to record digest failure", "profile", t.Profile.Name, "error", recErr)
	}
	return err
}
