package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadDotEnv reads .env files into the process environment. Missing files are
// ignored; variables already set are never overwritten.
func LoadDotEnv(files ...string) {
	_ = godotenv.Load(files...)
}

// ApplyEnv overrides deployment-specific settings from the environment.
func (c *Config) ApplyEnv() {
	c.Server.Addr = getEnv("PROMPTGALLERY_ADDR", c.Server.Addr)
	c.Site.SiteURL = getEnv("PROMPTGALLERY_SITE_URL", c.Site.SiteURL)
	c.Build.SourceDir = getEnv("PROMPTGALLERY_SOURCE_DIR", c.Build.SourceDir)
	c.Build.IndexPath = getEnv("PROMPTGALLERY_INDEX_PATH", c.Build.IndexPath)
	c.Contributors.APIURL = getEnv("GITHUB_API_URL", c.Contributors.APIURL)
	c.Contributors.Repo = getEnv("CONTRIBUTORS_REPO", c.Contributors.Repo)

	if v := os.Getenv("CONTRIBUTORS_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Contributors.Enabled = b
		}
	}
	if v := os.Getenv("PROMPTGALLERY_WATCH"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Server.Watch = b
		}
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
