package structs

import "time"

type Instance struct {
	EbsOptimized   bool              `json:"ebs-optimized"`
	Id             string            `json:"id"`
	Image          string            `json:"image"`
	Key            string            `json:"key"`
	Monitoring     bool              `json:"monitoring"`
	PrivateIp      string            `json:"private-ip"`
	Profile        string            `json:"profile"`
	PublicIp       string            `json:"public-ip"`
	SecurityGroups []string          `json:"security-groups"`
	Started        time.Time         `json:"started"`
	Status         string            `json:"status"`
	Subnet         string            `json:"subnet"`
	Tags           map[string]string `json:"tags"`
	Type           string            `json:"type"`
	Zone           string            `json:"zone"`
}

type Instances []Instance

type InstanceCloneOptions struct {
	ClientToken *string
	Count       *int
	CopyTags    *bool
	PrivateIp   *string
	Tags        map[string]string
}

func (ii Instances) Len() int           { return len(ii) }
func (ii Instances) Less(i, j int) bool { return ii[i].Id < ii[j].Id }
func (ii Instances) Swap(i, j int)      { ii[i], ii[j] = ii[j], ii[i] }
