package shared_utils

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func TestGhcrImageIsRoutedThroughCache(t *testing.T) {
	cacheParams := &DockerCacheParams{Enabled: true, URL: "my-docker-cache.example.com"}
	rewritten := GetDockerCacheImage(cacheParams, "ghcr.io/sovanetwork/sova-sentinel:v0.1.4")
	require.Equal(t, "my-docker-cache.example.com/gh/sovanetwork/sova-sentinel:v0.1.4", rewritten)
}

func TestNonGhcrImageIsUnchanged(t *testing.T) {
	cacheParams := &DockerCacheParams{Enabled: true, URL: "my-docker-cache.example.com"}
	require.Equal(t, "sigp/lighthouse:latest", GetDockerCacheImage(cacheParams, "sigp/lighthouse:latest"))
	require.Equal(t, "docker.io/library/busybox", GetDockerCacheImage(cacheParams, "docker.io/library/busybox"))
}

func TestDisabledCacheIsUnchanged(t *testing.T) {
	cacheParams := &DockerCacheParams{Enabled: false, URL: "my-docker-cache.example.com"}
	require.Equal(t, "ghcr.io/sovanetwork/sova-sentinel:latest", GetDockerCacheImage(cacheParams, "ghcr.io/sovanetwork/sova-sentinel:latest"))
}

func TestNilCacheParamsIsUnchanged(t *testing.T) {
	require.Equal(t, "ghcr.io/sovanetwork/sova-sentinel:latest", GetDockerCacheImage(nil, "ghcr.io/sovanetwork/sova-sentinel:latest"))
}

func TestCacheWithoutUrlIsUnchanged(t *testing.T) {
	cacheParams := &DockerCacheParams{Enabled: true, URL: ""}
	require.Equal(t, "ghcr.io/sovanetwork/sova-sentinel:latest", GetDockerCacheImage(cacheParams, "ghcr.io/sovanetwork/sova-sentinel:latest"))
}

func TestRegistryNameAloneIsNotRewritten(t *testing.T) {
	// "ghcr.io-mirror/foo" must not match the ghcr.io prefix
	cacheParams := &DockerCacheParams{Enabled: true, URL: "my-docker-cache.example.com"}
	require.Equal(t, "ghcr.io-mirror/foo:latest", GetDockerCacheImage(cacheParams, "ghcr.io-mirror/foo:latest"))
}
