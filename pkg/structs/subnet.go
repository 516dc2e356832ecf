package structs

type Subnet struct {
	AvailabilityZone string `json:"az"`
	Cidr             string `json:"cidr"`
}

type Subnets []Subnet

type SubnetSplitOptions struct {
	Count *int
}
