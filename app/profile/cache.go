package profile

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

type Cache struct {
	profilesDir string
	cache       map[string]*Profile
	mu          sync.RWMutex
}

func NewCache(profilesDir string) *Cache {
	return &Cache{
		profilesDir: profilesDir,
		cache:       make(map[string]*Profile),
	}
}

func (c *Cache) Run() error {
	if _, err := os.Stat(c.profilesDir); os.IsNotExist(err) {
		return nil
	}

	files, err := filepath.Glob(filepath.Join(c.profilesDir, "*.yml"))
	if err != nil {
		return fmt.Errorf("failed to find YML files: %w", err)
	}

	for _, file := range files {
		fileName := filepath.Base(file)
		profileName := fileName[:len(fileName)-4] // Remove .yml extension

		profile, err := c.LoadProfile(profileName)
		if err != nil {
			return fmt.Errorf("error loading %s: %w", file, err)
		}

		slog.Debug("Profile loaded", "profile", profileName, "enabled", profile.Settings.Enabled, "keywords", len(profile.Weights), "categories", len(profile.Categories))
	}

	return nil
}

func (c *Cache) LoadProfile(profileName string) (*Profile, error) {
	profileFile := filepath.Join(c.profilesDir, profileName+".yml")
	profile, err := c.parseProfile(profileFile)
	if err != nil {
		return nil, err
	}

	profile.Name = profileName

	if err := c.validateProfile(profile); err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", profileFile, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache[profile.Name] = profile

	return profile, nil
}

func (c *Cache) GetProfile(profileName string) (*Profile, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	profile, ok := c.cache[profileName]
	if !ok {
		return nil, fmt.Errorf("profile with name '%s' not found", profileName)
	}
	return profile, nil
}

func (c *Cache) GetProfiles() map[string]*Profile {
	c.mu.RLock()
	defer c.mu.RUnlock()

	profilesCopy := make(map[string]*Profile, len(c.cache))
	for k, v := range c.cache {
		profilesCopy[k] = v
	}
	return profilesCopy
}

func (c *Cache) GetEnabledProfiles() map[string]*Profile {
	c.mu.RLock()
	defer c.mu.RUnlock()

	enabled := make(map[string]*Profile)
	for k, v := range c.cache {
		if v.Settings.Enabled {
			enabled[k] = v
		}
	}
	return enabled
}

func (c *Cache) GetProfileCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}

// Categories returns the union of categories across enabled profiles, so
// that each subject is fetched and tagged once regardless of how many
// users watch it.
func (c *Cache) Categories() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	seen := make(map[string]bool)
	var categories []string
	for _, profile := range c.cache {
		if !profile.Settings.Enabled {
			continue
		}
		for _, category := range profile.Categories {
			if seen[category] {
				continue
			}
			seen[category] = true
			categories = append(categories, category)
		}
	}
	return categories
}

func (c *Cache) parseProfile(profileFile string) (*Profile, error) {
	data, err := os.ReadFile(profileFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var profile Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	weights, err := c.resolveWeights(&profile)
	if err != nil {
		return nil, err
	}
	profile.Weights = weights

	return &profile, nil
}

// resolveWeights collapses the three accepted keyword input forms into the
// canonical mapping. An ordered list converts to descending integer
// weights starting at the list length, with a floor of 1.
func (c *Cache) resolveWeights(profile *Profile) (map[string]int, error) {
	if len(profile.Keywords) > 0 {
		return profile.Keywords, nil
	}

	keywords := profile.KeywordList
	if len(keywords) == 0 && profile.KeywordFile != "" {
		loaded, err := readKeywordFile(profile.KeywordFile)
		if err != nil {
			return nil, err
		}
		keywords = loaded
	}

	weights := make(map[string]int, len(keywords))
	for i, keyword := range keywords {
		weight := len(keywords) - i
		if weight < 1 {
			weight = 1
		}
		weights[keyword] = weight
	}
	return weights, nil
}

func readKeywordFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open keyword file: %w", err)
	}
	defer file.Close()

	var keywords []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		keywords = append(keywords, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read keyword file: %w", err)
	}
	return keywords, nil
}

func (c *Cache) validateProfile(profile *Profile) error {
	if profile == nil {
		return fmt.Errorf("profile is nil")
	}

	if profile.Recipient == "" {
		return fmt.Errorf("recipient is required")
	}
	if len(profile.Categories) == 0 {
		return fmt.Errorf("at least one category is required")
	}
	if len(profile.Weights) == 0 {
		return fmt.Errorf("at least one keyword is required")
	}

	for keyword, weight := range profile.Weights {
		if weight < 1 {
			return fmt.Errorf("keyword %q has non-positive weight %d", keyword, weight)
		}
	}

	thresholds := map[string]int{
		"token_set_threshold": profile.Settings.TokenSetThreshold,
		"partial_threshold":   profile.Settings.PartialThreshold,
	}
	for name, value := range thresholds {
		if value < 0 || value > 100 {
			return fmt.Errorf("%s must be within 0-100, got %d", name, value)
		}
	}

	return nil
}
