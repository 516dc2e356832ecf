package aws_test

import (
	"bytes"
	"net/http/httptest"
	"os"

	"github.com/convox/logger"
	"github.com/convox/stdaws/pkg/test/awsutil"
	"github.com/convox/stdaws/provider/aws"
)

func init() {
	logger.Output = &bytes.Buffer{}
}

type AwsStub struct {
	*aws.Provider
	server *httptest.Server
}

func (a *AwsStub) Close() {
	a.server.Close()
}

// StubAwsProvider creates an httptest server with canned Request / Response
// cycles and returns a provider that uses the test server as its endpoint
func StubAwsProvider(cycles ...awsutil.Cycle) *AwsStub {
	handler := awsutil.NewHandler(cycles)
	s := httptest.NewServer(handler)

	os.Setenv("AWS_ACCESS_KEY_ID", "test-access")
	os.Setenv("AWS_SECRET_ACCESS_KEY", "test-secret")

	p := &aws.Provider{
		Region:   "us-test-1",
		Endpoint: s.URL,
	}

	return &AwsStub{p, s}
}
