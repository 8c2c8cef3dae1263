package module_io

// The structure that will be returned, JSON-serialized, from calling this module
type ExecuteResponse struct {
	SovaSentinelInfo *SovaSentinelInfo `json:"sovaSentinel,omitempty"`
}

type SovaSentinelInfo struct {
	ServiceID  string `json:"serviceId"`
	GRPCURL    string `json:"grpcUrl"`
	MetricsURL string `json:"metricsUrl"`
}
