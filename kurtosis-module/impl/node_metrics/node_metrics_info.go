package node_metrics

type NodeMetricsInfo struct {
	name string
	path string
	url  string
}

func NewNodeMetricsInfo(name string, path string, url string) *NodeMetricsInfo {
	return &NodeMetricsInfo{name: name, path: path, url: url}
}

func (nodeMetricsInfo *NodeMetricsInfo) GetName() string {
	return nodeMetricsInfo.name
}

func (nodeMetricsInfo *NodeMetricsInfo) GetPath() string {
	return nodeMetricsInfo.path
}

func (nodeMetricsInfo *NodeMetricsInfo) GetURL() string {
	return nodeMetricsInfo.url
}
