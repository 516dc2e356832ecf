package aws

import (
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/convox/stdaws/pkg/structs"
)

func (p *Provider) ZoneList() (structs.Zones, error) {
	log := Logger.At("ZoneList").Start()

	res, err := p.ec2().DescribeAvailabilityZones(&ec2.DescribeAvailabilityZonesInput{})
	if err != nil {
		return nil, log.Error(err)
	}

	zones := structs.Zones{}

	for _, az := range res.AvailabilityZones {
		zones = append(zones, structs.Zone{
			Name:   cs(az.ZoneName, ""),
			Region: cs(az.RegionName, ""),
			State:  cs(az.State, ""),
		})
	}

	return zones, log.Success()
}
