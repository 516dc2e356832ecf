package aws

import (
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/convox/stdaws/pkg/structs"
	"github.com/xtgo/uuid"
)

// InstanceClone launches count copies of an image using an existing
// instance as the template for placement and hardware settings.
func (p *Provider) InstanceClone(id, image string, opts structs.InstanceCloneOptions) (structs.Instances, error) {
	log := Logger.At("InstanceClone").Namespace("id=%q image=%q", id, image).Start()

	model, err := p.InstanceGet(id)
	if err != nil {
		return nil, log.Error(err)
	}

	count := 1
	if opts.Count != nil {
		count = *opts.Count
	}

	req := &ec2.RunInstancesInput{
		ClientToken:  aws.String(cs(opts.ClientToken, uuid.NewRandom().String())),
		EbsOptimized: aws.Bool(model.EbsOptimized),
		ImageId:      aws.String(image),
		InstanceType: aws.String(model.Type),
		MaxCount:     aws.Int64(int64(count)),
		MinCount:     aws.Int64(int64(count)),
		Monitoring: &ec2.RunInstancesMonitoringEnabled{
			Enabled: aws.Bool(model.Monitoring),
		},
	}

	if model.Key != "" {
		req.KeyName = aws.String(model.Key)
	}

	if model.Profile != "" {
		req.IamInstanceProfile = &ec2.IamInstanceProfileSpecification{
			Arn: aws.String(model.Profile),
		}
	}

	if opts.PrivateIp != nil {
		req.PrivateIpAddress = opts.PrivateIp
	}

	if len(model.SecurityGroups) > 0 {
		req.SecurityGroupIds = aws.StringSlice(model.SecurityGroups)
	}

	if model.Subnet != "" {
		req.SubnetId = aws.String(model.Subnet)
	}

	tags := map[string]string{}

	if cb(opts.CopyTags, false) {
		for k, v := range model.Tags {
			tags[k] = v
		}
	}

	for k, v := range opts.Tags {
		tags[k] = v
	}

	if len(tags) > 0 {
		ks := []string{}

		for k := range tags {
			ks = append(ks, k)
		}

		sort.Strings(ks)

		ts := []*ec2.Tag{}

		for _, k := range ks {
			ts = append(ts, &ec2.Tag{Key: aws.String(k), Value: aws.String(tags[k])})
		}

		req.TagSpecifications = []*ec2.TagSpecification{
			{
				ResourceType: aws.String("instance"),
				Tags:         ts,
			},
		}
	}

	res, err := p.ec2().RunInstances(req)
	if err != nil {
		return nil, log.Error(err)
	}

	instances := structs.Instances{}

	for _, i := range res.Instances {
		instances = append(instances, *instanceFromItem(i))
	}

	return instances, log.Successf("count=%d", len(instances))
}

func (p *Provider) InstanceGet(id string) (*structs.Instance, error) {
	log := Logger.At("InstanceGet").Namespace("id=%q", id).Start()

	res, err := p.ec2().DescribeInstances(&ec2.DescribeInstancesInput{
		InstanceIds: []*string{aws.String(id)},
	})
	if awsError(err) == "InvalidInstanceID.NotFound" {
		return nil, log.Error(errorNotFound(fmt.Sprintf("no such instance: %s", id)))
	}
	if err != nil {
		return nil, log.Error(err)
	}

	for _, r := range res.Reservations {
		for _, i := range r.Instances {
			return instanceFromItem(i), log.Success()
		}
	}

	return nil, log.Error(errorNotFound(fmt.Sprintf("no such instance: %s", id)))
}

func (p *Provider) InstanceList() (structs.Instances, error) {
	log := Logger.At("InstanceList").Start()

	instances := structs.Instances{}

	err := p.ec2().DescribeInstancesPages(&ec2.DescribeInstancesInput{}, func(res *ec2.DescribeInstancesOutput, last bool) bool {
		for _, r := range res.Reservations {
			for _, i := range r.Instances {
				instances = append(instances, *instanceFromItem(i))
			}
		}
		return true
	})
	if err != nil {
		return nil, log.Error(err)
	}

	sort.Sort(instances)

	return instances, log.Successf("count=%d", len(instances))
}

func instanceFromItem(i *ec2.Instance) *structs.Instance {
	instance := &structs.Instance{
		EbsOptimized: cb(i.EbsOptimized, false),
		Id:           cs(i.InstanceId, ""),
		Image:        cs(i.ImageId, ""),
		Key:          cs(i.KeyName, ""),
		PrivateIp:    cs(i.PrivateIpAddress, ""),
		PublicIp:     cs(i.PublicIpAddress, ""),
		Started:      ct(i.LaunchTime),
		Subnet:       cs(i.SubnetId, ""),
		Type:         cs(i.InstanceType, ""),
	}

	if i.IamInstanceProfile != nil {
		instance.Profile = cs(i.IamInstanceProfile.Arn, "")
	}

	if i.Monitoring != nil {
		instance.Monitoring = cs(i.Monitoring.State, "") == "enabled"
	}

	if i.Placement != nil {
		instance.Zone = cs(i.Placement.AvailabilityZone, "")
	}

	if i.State != nil {
		instance.Status = cs(i.State.Name, "")
	}

	groups := []string{}

	for _, g := range i.SecurityGroups {
		groups = append(groups, cs(g.GroupId, ""))
	}

	instance.SecurityGroups = groups

	tags := map[string]string{}

	for _, t := range i.Tags {
		tags[cs(t.Key, "")] = cs(t.Value, "")
	}

	instance.Tags = tags

	return instance
}
