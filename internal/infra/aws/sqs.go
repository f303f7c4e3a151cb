package aws

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"todo-api/pkg/resource"
)

// NewSqsClient builds an SQS client, pointing it at app.cloud.aws-endpoint when set (LocalStack)
func NewSqsClient(config aws.Config) *sqs.Client {
	return sqs.NewFromConfig(config, func(o *sqs.Options) {
		if endpoint := resource.GetString("app.cloud.aws-endpoint"); endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
}
