package provider

import (
	"github.com/convox/stdaws/pkg/structs"
	"github.com/stretchr/testify/mock"
)

// TestProvider is a test provider
type TestProvider struct {
	mock.Mock
	Instance  structs.Instance
	Instances structs.Instances
	Subnets   structs.Subnets
	Zones     structs.Zones
}

// InstanceClone launches copies of an Instance
func (p *TestProvider) InstanceClone(id, image string, opts structs.InstanceCloneOptions) (structs.Instances, error) {
	p.Called(id, image, opts)
	return p.Instances, nil
}

// InstanceGet gets an Instance
func (p *TestProvider) InstanceGet(id string) (*structs.Instance, error) {
	p.Called(id)
	return &p.Instance, nil
}

// InstanceList lists Instances
func (p *TestProvider) InstanceList() (structs.Instances, error) {
	p.Called()
	return p.Instances, nil
}

// SubnetSplit splits a network into Subnets
func (p *TestProvider) SubnetSplit(network string, opts structs.SubnetSplitOptions) (structs.Subnets, error) {
	p.Called(network, opts)
	return p.Subnets, nil
}

// ZoneList lists availability Zones
func (p *TestProvider) ZoneList() (structs.Zones, error) {
	p.Called()
	return p.Zones, nil
}
