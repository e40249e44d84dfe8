package cfg

import (
	"testing"
)

func TestGetVersion(t *testing.T) {
	// Test default version
	if GetVersion() == "" {
		t.Error("GetVersion should never return empty string")
	}

	// Test that version is at least "dev" or "unknown"
	version := GetVersion()
	if version != "dev" && version != "unknown" {
		// This is fine, version could be set at build time
		t.Logf("Version: %s", version)
	}
}

func TestConfigFields(t *testing.T) {
	// Create a config instance to test field access
	cfg := &Cfg{
		DBPath:             "./test.db",
		ProfilesDir:        "./profiles",
		Port:               "8080",
		WorkerCount:        3,
		SchedulerInterval:  300,
		APIAccessKey:       "test-key",
		Source:             "listing",
		ListingMode:        "both",
		SameDateCheck:      true,
		MaxResults:         200,
		TokenSetThreshold:  65,
		PartialThreshold:   75,
		TagScoreThreshold:  5.0,
		TagCap:             8,
		TagDedupeThreshold: 80,
		ShowTagThreshold:   7.9,
		ShowTagCap:         5,
		SMTPHost:           "smtp.example.com",
		SMTPPort:           "587",
		SMTPSender:         "digest@example.com",
		UserAgent:          "Test Agent",
		Timezone:           "UTC",
		Debug:              true,
		Version:            "test-version",
	}

	// Test direct field access
	if cfg.DBPath != "./test.db" {
		t.Errorf("Expected DB path './test.db', got '%s'", cfg.DBPath)
	}
	if cfg.ProfilesDir != "./profiles" {
		t.Errorf("Expected profiles dir './profiles', got '%s'", cfg.ProfilesDir)
	}
	if cfg.Port != "8080" {
		t.Errorf("Expected port '8080', got '%s'", cfg.Port)
	}
	if cfg.WorkerCount != 3 {
		t.Errorf("Expected worker count 3, got %d", cfg.WorkerCount)
	}
	if cfg.SchedulerInterval != 300 {
		t.Errorf("Expected scheduler interval 300, got %d", cfg.SchedulerInterval)
	}
	if cfg.APIAccessKey != "test-key" {
		t.Errorf("Expected API key 'test-key', got '%s'", cfg.APIAccessKey)
	}
	if cfg.Source != "listing" {
		t.Errorf("Expected source 'listing', got '%s'", cfg.Source)
	}
	if cfg.ListingMode != "both" {
		t.Errorf("Expected listing mode 'both', got '%s'", cfg.ListingMode)
	}
	if !cfg.SameDateCheck {
		t.Error("Expected same date check to be enabled")
	}
	if cfg.TokenSetThreshold != 65 {
		t.Errorf("Expected token set threshold 65, got %d", cfg.TokenSetThreshold)
	}
	if cfg.PartialThreshold != 75 {
		t.Errorf("Expected partial threshold 75, got %d", cfg.PartialThreshold)
	}
	if cfg.TagScoreThreshold != 5.0 {
		t.Errorf("Expected tag score threshold 5.0, got %v", cfg.TagScoreThreshold)
	}
	if cfg.ShowTagCap != 5 {
		t.Errorf("Expected show tag cap 5, got %d", cfg.ShowTagCap)
	}
	if cfg.SMTPHost != "smtp.example.com" {
		t.Errorf("Expected SMTP host 'smtp.example.com', got '%s'", cfg.SMTPHost)
	}
	if cfg.UserAgent != "Test Agent" {
		t.Errorf("Expected user agent 'Test Agent', got '%s'", cfg.UserAgent)
	}
	if cfg.Timezone != "UTC" {
		t.Errorf("Expected timezone 'UTC', got '%s'", cfg.Timezone)
	}
	if !cfg.Debug {
		t.Error("Expected debug to be enabled")
	}
	if cfg.Version != "test-version" {
		t.Errorf("Expected version 'test-version', got '%s'", cfg.Version)
	}
}
