package shared_utils

import (
	"strings"
)

const (
	// Kubernetes caps label values at 63 characters; image references longer than
	// this get truncated from the front before being used as a label value
	MaxLabelLength = 63

	labelKeyPrefix = "ethereum-package."

	clientLabelKey          = labelKeyPrefix + "client"
	clientTypeLabelKey      = labelKeyPrefix + "client-type"
	clientImageLabelKey     = labelKeyPrefix + "client-image"
	connectedClientLabelKey = labelKeyPrefix + "connected-client"
)

// GetClientLabels builds the label set attached to every service this package
// launches, so that operators can select services by client, role, and image.
// The image value is sanitized because registries and tags contain characters
// that aren't legal in label values.
func GetClientLabels(
	client string,
	clientType string,
	image string,
	connectedClient string,
	extraLabels map[string]string,
) map[string]string {
	labels := map[string]string{
		clientLabelKey:      client,
		clientTypeLabelKey:  clientType,
		clientImageLabelKey: sanitizeLabelValue(image),
	}
	if connectedClient != "" {
		labels[connectedClientLabelKey] = connectedClient
	}
	for key, value := range extraLabels {
		labels[key] = value
	}
	return labels
}

func sanitizeLabelValue(value string) string {
	sanitized := strings.ReplaceAll(value, "/", "-")
	sanitized = strings.ReplaceAll(sanitized, ":", "_")
	return sanitized
}
