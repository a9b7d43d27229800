// Package config loads the scraper's two inputs: the JSON configuration
// carrying the AI credentials and the pipe-delimited category target list.
package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"product-scraper/internal/types"
)

// Load reads config.json (api_key, model and optional overrides) and
// merges it over the defaults. Environment variables prefixed with
// SCRAPER_ take precedence over the file.
func Load(path string) (*types.Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	v.SetEnvPrefix("SCRAPER")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := types.DefaultConfig()
	cfg.APIKey = v.GetString("api_key")
	cfg.Model = v.GetString("model")

	if v.IsSet("images_dir") {
		cfg.ImagesDir = v.GetString("images_dir")
	}
	if v.IsSet("output_dir") {
		cfg.OutputDir = v.GetString("output_dir")
	}
	if v.IsSet("timeout") {
		cfg.Timeout = v.GetDuration("timeout")
	}
	if v.IsSet("max_scrolls") {
		cfg.MaxScrolls = v.GetInt("max_scrolls")
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("config %s: api_key is required", path)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("config %s: model is required", path)
	}

	return cfg, nil
}

// LoadCategoryTargets parses the category file: one pipe-separated
// `site|category|url` row per line. Blank lines are skipped; a malformed
// line is a hard error because a silently dropped category would go
// unnoticed until the report is missing a site.
func LoadCategoryTargets(path string) ([]types.CategoryTarget, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open category file %s: %w", path, err)
	}
	defer file.Close()

	var targets []types.CategoryTarget
	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Split(line, "|")
		if len(parts) != 3 {
			return nil, fmt.Errorf("category file %s line %d: expected site|category|url, got %q", path, lineNum, line)
		}

		targets = append(targets, types.CategoryTarget{
			SiteName:     strings.TrimSpace(parts[0]),
			CategoryName: strings.TrimSpace(parts[1]),
			CategoryURL:  strings.TrimSpace(parts[2]),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read category file %s: %w", path, err)
	}

	return targets, nil
}
