package aws

import (
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/aws/aws-sdk-go/service/ec2/ec2iface"
	"github.com/convox/logger"
	"github.com/pkg/errors"
)

var Logger = logger.New("ns=provider.aws")

// Provider implements operations against the AWS APIs. Set EC2 to
// substitute a client, otherwise one is built from the other fields.
type Provider struct {
	Region   string
	Endpoint string
	Access   string
	Secret   string
	Token    string

	EC2 ec2iface.EC2API
}

// FromEnv returns a Provider configured from the environment
func FromEnv() (*Provider, error) {
	region := os.Getenv("AWS_REGION")
	if region == "" {
		return nil, errors.WithStack(fmt.Errorf("AWS_REGION must be set"))
	}

	p := &Provider{
		Region:   region,
		Endpoint: os.Getenv("AWS_ENDPOINT"),
		Access:   os.Getenv("AWS_ACCESS"),
		Secret:   os.Getenv("AWS_SECRET"),
		Token:    os.Getenv("AWS_TOKEN"),
	}

	return p, nil
}

/** services ****************************************************************************************/

func (p *Provider) config() *aws.Config {
	config := &aws.Config{}

	if p.Region != "" {
		config.Region = aws.String(p.Region)
	}

	if p.Endpoint != "" {
		config.Endpoint = aws.String(p.Endpoint)
	}

	if p.Access != "" {
		config.Credentials = credentials.NewStaticCredentials(p.Access, p.Secret, p.Token)
	}

	if os.Getenv("DEBUG") != "" {
		config.WithLogLevel(aws.LogDebugWithHTTPBody)
	}

	return config
}

func (p *Provider) ec2() ec2iface.EC2API {
	if p.EC2 != nil {
		return p.EC2
	}

	return ec2.New(session.New(), p.config())
}
