package aws

import (
	"time"

	"github.com/aws/aws-sdk-go/aws/awserr"
)

func awsError(err error) string {
	if ae, ok := err.(awserr.Error); ok {
		return ae.Code()
	}

	return ""
}

func cb(b *bool, def bool) bool {
	if b != nil {
		return *b
	} else {
		return def
	}
}

func cs(s *string, def string) string {
	if s != nil {
		return *s
	} else {
		return def
	}
}

func ct(t *time.Time) time.Time {
	if t != nil {
		return *t
	} else {
		return time.Time{}
	}
}
