package api

import (
	"github.com/lysyi3m/arxiv-comb/app/arxiv"
	"github.com/lysyi3m/arxiv-comb/app/database"
	"github.com/lysyi3m/arxiv-comb/app/mail"
	"github.com/lysyi3m/arxiv-comb/app/profile"
	"github.com/lysyi3m/arxiv-comb/app/tasks"
)

type Handler struct {
	profileCache *profile.Cache
	listingRepo  database.ListingRepository
	digestRepo   database.DigestRepository
	builder      *tasks.DigestBuilder
	renderer     *mail.Renderer
	sender       mail.SenderInterface
	scheduler    tasks.TaskSchedulerInterface
	sourceMode   arxiv.SourceMode
	showCut      arxiv.TagCut
}
