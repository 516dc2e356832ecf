package provider

import (
	"fmt"
	"os"

	"github.com/convox/stdaws/pkg/structs"
	"github.com/convox/stdaws/provider/aws"
	"github.com/pkg/errors"
)

// FromEnv returns a Provider from the PROVIDER environment variable
func FromEnv() (structs.Provider, error) {
	return FromName(os.Getenv("PROVIDER"))
}

// FromName returns a Provider by name
func FromName(name string) (structs.Provider, error) {
	switch name {
	case "aws", "":
		return aws.FromEnv()
	default:
		return nil, errors.WithStack(fmt.Errorf("unknown provider: %s", name))
	}
}
