package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lysyi3m/arxiv-comb/app/arxiv"
	"github.com/lysyi3m/arxiv-comb/app/cfg"
	"github.com/lysyi3m/arxiv-comb/app/database"
	"github.com/lysyi3m/arxiv-comb/app/mail"
	"github.com/lysyi3m/arxiv-comb/app/profile"
	"github.com/lysyi3m/arxiv-comb/app/tasks"
)

func NewHandler(profileCache *profile.Cache, listingRepo database.ListingRepository,
	digestRepo database.DigestRepository, builder *tasks.DigestBuilder,
	sender mail.SenderInterface, scheduler tasks.TaskSchedulerInterface) *Handler {
	cfg := cfg.Get()

	return &Handler{
		profileCache: profileCache,
		listingRepo:  listingRepo,
		digestRepo:   digestRepo,
		builder:      builder,
		renderer:     mail.NewRenderer(),
		sender:       sender,
		scheduler:    scheduler,
		sourceMode:   arxiv.SourceMode(cfg.Source),
		showCut:      arxiv.TagCut{Threshold: cfg.ShowTagThreshold, Cap: cfg.ShowTagCap},
	}
}

// GetDigest returns the relevance-filtered view of a profile's digest for
// one announce date, without sending mail. Tags are re-cut with the
// stricter display thresholds.
func (h *Handler) GetDigest(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	p, err := h.profileCache.GetProfile(name)
	if err != nil {
		slog.Error("Profile not found", "profile", name, "error", err)
		c.Status(http.StatusNotFound)
		return
	}

	announceDate := c.Query("date")
	if announceDate == "" {
		announceDate = arxiv.ExpectedAnnounceDate(time.Now(), h.sourceMode)
	}

	collection, total, err := h.builder.Run(p, announceDate)
	if err != nil {
		slog.Error("Failed to build digest", "profile", name, "announce_date", announceDate, "error", err)
		c.JSON(http.StatusNotFound, gin.H{"error": "No stored listings for this date"})
		return
	}

	relevant := collection.RelevantPurified(h.showCut)

	c.JSON(http.StatusOK, gin.H{
		"profile":       name,
		"announce_date": announceDate,
		"total":         total,
		"relevant":      len(relevant),
		"submissions":   relevant,
	})
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := map[string]interface{}{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
	}

	health["loaded_profiles"] = h.profileCache.GetProfileCount()

	if stats, err := h.listingRepo.GetStats(); err == nil {
		health["listings"] = stats.ListingCount
	}

	c.JSON(http.StatusOK, health)
}

func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.listingRepo.GetStats()
	if err != nil {
		slog.Error("Database error", "operation", "get_stats", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"listings":             stats.ListingCount,
		"submissions":          stats.SubmissionCount,
		"latest_announce_date": stats.LatestDate,
		"loaded_profiles":      h.profileCache.GetProfileCount(),
		"categories":           h.profileCache.Categories(),
	})
}

func (h *Handler) APIListProfiles(c *gin.Context) {
	loaded := h.profileCache.GetProfiles()

	profiles := make([]map[string]interface{}, 0, len(loaded))
	for _, p := range loaded {
		profiles = append(profiles, map[string]interface{}{
			"name":       p.Name,
			"recipient":  p.Recipient,
			"categories": p.Categories,
			"keywords":   len(p.Weights),
			"enabled":    p.Settings.Enabled,
		})
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"profiles": profiles,
		"total":    len(profiles),
	})
}

// APISendDigest enqueues an immediate digest delivery for a profile,
// bypassing the scheduler's once-per-day gating.
func (h *Handler) APISendDigest(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing profile name parameter"})
		return
	}

	p, err := h.profileCache.GetProfile(name)
	if err != nil {
		slog.Error("Profile not found", "profile", name, "error", err)
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}

	announceDate := c.Query("date")
	if announceDate == "" {
		announceDate = arxiv.ExpectedAnnounceDate(time.Now(), h.sourceMode)
	}

	digestTask := tasks.NewSendDigestTask(p, announceDate, h.builder, h.digestRepo, h.renderer, h.sender, h.showCut)
	if err := h.scheduler.EnqueueTask(digestTask); err != nil {
		slog.Error("Error enqueueing digest task", "profile", name, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to enqueue digest task",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Digest task enqueued successfully",
		"profile": gin.H{
			"name":          name,
			"recipient":     p.Recipient,
			"announce_date": announceDate,
		},
		"task": gin.H{
			"id":   digestTask.ID,
			"type": digestTask.Type,
		},
	})
}
