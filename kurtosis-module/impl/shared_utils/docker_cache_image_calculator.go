package shared_utils

import (
	"strings"
)

const (
	githubContainerRegistry = "ghcr.io"

	// Path prefix under which the cache mirrors the GitHub container registry
	githubCachePrefix = "/gh"
)

// Parameters controlling whether images are pulled through a caching registry mirror
type DockerCacheParams struct {
	// If false, images are pulled straight from their source registry
	Enabled bool `json:"enabled"`

	// Base URL of the caching mirror, e.g. "my-docker-cache.example.com"
	URL string `json:"url"`
}

// GetDockerCacheImage rewrites a ghcr.io image reference to route the pull
// through the caching mirror, preserving the repository path and tag. Images
// from other registries, and all images when the cache is disabled, are
// returned unchanged.
func GetDockerCacheImage(dockerCacheParams *DockerCacheParams, image string) string {
	if dockerCacheParams == nil || !dockerCacheParams.Enabled || dockerCacheParams.URL == "" {
		return image
	}
	if strings.HasPrefix(image, githubContainerRegistry+"/") {
		return dockerCacheParams.URL + githubCachePrefix + strings.TrimPrefix(image, githubContainerRegistry)
	}
	return image
}
