package sentinel

import (
	"fmt"
	"github.com/SovaNetwork/ethereum-package/kurtosis-module/impl/node_metrics"
	"github.com/kurtosis-tech/kurtosis-core-api-lib/api/golang/lib/services"
)

// A handle to a running sentinel service
type SentinelContext struct {
	serviceId   services.ServiceID
	ipAddr      string
	grpcPortNum uint16
	metricsInfo *node_metrics.NodeMetricsInfo
}

func NewSentinelContext(
	serviceId services.ServiceID,
	ipAddr string,
	grpcPortNum uint16,
	metricsInfo *node_metrics.NodeMetricsInfo,
) *SentinelContext {
	return &SentinelContext{
		serviceId:   serviceId,
		ipAddr:      ipAddr,
		grpcPortNum: grpcPortNum,
		metricsInfo: metricsInfo,
	}
}

func (ctx *SentinelContext) GetServiceID() services.ServiceID {
	return ctx.serviceId
}

func (ctx *SentinelContext) GetIPAddress() string {
	return ctx.ipAddr
}

func (ctx *SentinelContext) GetGRPCPortNum() uint16 {
	return ctx.grpcPortNum
}

func (ctx *SentinelContext) GetMetricsInfo() *node_metrics.NodeMetricsInfo {
	return ctx.metricsInfo
}

func (ctx *SentinelContext) GetGRPCURL() string {
	return fmt.Sprintf("http://%v:%v", ctx.ipAddr, ctx.grpcPortNum)
}
