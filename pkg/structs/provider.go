package structs

type Provider interface {
	InstanceClone(id, image string, opts InstanceCloneOptions) (Instances, error)
	InstanceGet(id string) (*Instance, error)
	InstanceList() (Instances, error)

	SubnetSplit(network string, opts SubnetSplitOptions) (Subnets, error)

	ZoneList() (Zones, error)
}
