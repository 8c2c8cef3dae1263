package plan

import (
	"github.com/kurtosis-tech/kurtosis-core-api-lib/api/golang/lib/services"
)

// Plan is the handle through which launchers submit service descriptors for
// scheduling; the implementation owns all mutation of live infrastructure state
type Plan interface {
	AddService(serviceId services.ServiceID, serviceConfig *ServiceConfig) (*Service, error)
}

// A service that has been added to a plan
type Service struct {
	serviceId services.ServiceID

	// The address the orchestrator assigned to the service; only known after launch
	ipAddress string
}

func NewService(serviceId services.ServiceID, ipAddress string) *Service {
	return &Service{serviceId: serviceId, ipAddress: ipAddress}
}

func (service *Service) GetServiceID() services.ServiceID {
	return service.serviceId
}

func (service *Service) GetIPAddress() string {
	return service.ipAddress
}
