package services

import (
	portsrepo "github.com/propstake/propstake_backend/internal/core/ports/repositories"
	portssvc "github.com/propstake/propstake_backend/internal/core/ports/services"
)

// NewServiceContainer wires every application service against the repository
// provider. Handlers only ever see the container's interfaces.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Investment: NewInvestmentService(repos),
	}
}
