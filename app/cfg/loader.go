package cfg

import (
	"cmp"
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Storage configuration
	DBPath string `long:"db-path" env:"DB_PATH" default:"./arxiv-comb.db" description:"Path to the sqlite database file"`

	// Application configuration
	ProfilesDir       string `long:"profiles-dir" env:"PROFILES_DIR" default:"./profiles" description:"Directory containing user profile files"`
	Port              string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
	WorkerCount       int    `long:"worker-count" env:"WORKER_COUNT" default:"3" description:"Number of background workers for fetch and digest tasks"`
	SchedulerInterval int    `long:"scheduler-interval" env:"SCHEDULER_INTERVAL" default:"300" description:"Scheduler interval in seconds"`
	APIAccessKey      string `long:"api-key" env:"API_ACCESS_KEY" description:"API access key for authentication (optional)"`

	// Source configuration
	Source        string `long:"source" env:"SOURCE" default:"listing" choice:"listing" choice:"api" description:"Submission source: listing page scrape or search API"`
	ListingMode   string `long:"listing-mode" env:"LISTING_MODE" default:"both" choice:"new" choice:"cross" choice:"both" description:"Listing sections to retrieve"`
	SameDateCheck bool   `long:"same-date-check" env:"SAME_DATE_CHECK" description:"Skip listing pages whose date heading is not today's weekday"`
	MaxResults    int    `long:"max-results" env:"MAX_RESULTS" default:"200" description:"Maximum results per API query"`

	// Matching thresholds (0-100 fuzzy scale)
	TokenSetThreshold int `long:"token-set-threshold" env:"TOKEN_SET_THRESHOLD" default:"65" description:"Token-set similarity threshold for keyword matching"`
	PartialThreshold  int `long:"partial-threshold" env:"PARTIAL_THRESHOLD" default:"75" description:"Partial similarity threshold for keyword matching"`

	// Tag pipeline configuration
	TagScoreThreshold  float64 `long:"tag-score-threshold" env:"TAG_SCORE_THRESHOLD" default:"5.0" description:"Minimum extractor score for a tag candidate"`
	TagCap             int     `long:"tag-cap" env:"TAG_CAP" default:"8" description:"Maximum tags kept per submission"`
	TagDedupeThreshold int     `long:"tag-dedupe-threshold" env:"TAG_DEDUPE_THRESHOLD" default:"80" description:"Partial similarity threshold for tag deduplication"`
	ShowTagThreshold   float64 `long:"show-tag-threshold" env:"SHOW_TAG_THRESHOLD" default:"7.9" description:"Minimum extractor score for a shown tag"`
	ShowTagCap         int     `long:"show-tag-cap" env:"SHOW_TAG_CAP" default:"5" description:"Maximum tags shown per submission"`

	// Mail delivery
	SMTPHost     string `long:"smtp-host" env:"SMTP_HOST" description:"SMTP server host (mail delivery disabled when empty)"`
	SMTPPort     string `long:"smtp-port" env:"SMTP_PORT" default:"587" description:"SMTP server port"`
	SMTPSender   string `long:"smtp-sender" env:"SMTP_SENDER" description:"Sender email address"`
	SMTPAlias    string `long:"smtp-alias" env:"SMTP_ALIAS" default:"arXiv Comb" description:"Sender display name"`
	SMTPPassword string `long:"smtp-password" env:"SMTP_PASSWORD" description:"SMTP password or token"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"arXiv Comb/1.0" description:"User agent string for HTTP requests"`
	Timezone  string `long:"timezone" env:"TZ" default:"UTC" description:"Timezone for timestamps (e.g., UTC, America/New_York)"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		DBPath:             raw.DBPath,
		ProfilesDir:        raw.ProfilesDir,
		Port:               raw.Port,
		WorkerCount:        raw.WorkerCount,
		SchedulerInterval:  raw.SchedulerInterval,
		APIAccessKey:       raw.APIAccessKey,
		Source:             raw.Source,
		ListingMode:        raw.ListingMode,
		SameDateCheck:      raw.SameDateCheck,
		MaxResults:         raw.MaxResults,
		TokenSetThreshold:  raw.TokenSetThreshold,
		PartialThreshold:   raw.PartialThreshold,
		TagScoreThreshold:  raw.TagScoreThreshold,
		TagCap:             raw.TagCap,
		TagDedupeThreshold: raw.TagDedupeThreshold,
		ShowTagThreshold:   raw.ShowTagThreshold,
		ShowTagCap:         raw.ShowTagCap,
		SMTPHost:           raw.SMTPHost,
		SMTPPort:           raw.SMTPPort,
		SMTPSender:         raw.SMTPSender,
		SMTPAlias:          raw.SMTPAlias,
		SMTPPassword:       raw.SMTPPassword,
		UserAgent:          raw.UserAgent,
		Timezone:           raw.Timezone,
		Debug:              raw.Debug,
		Version:            GetVersion(),
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err != nil {
			return err
		} else {
			time.Local = loc
			fmt.Printf("Timezone configured: %s\n", timezone)
		}
	}
	return nil
}
