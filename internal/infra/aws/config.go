package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"

	"todo-api/pkg/resource"
)

// LoadConfig resolves the AWS configuration from app.cloud. Static credentials are used
// only when both keys are set; otherwise the SDK default chain applies.
func LoadConfig(ctx context.Context) (aws.Config, error) {
	optFns := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(resource.GetString("app.cloud.aws-region")),
	}

	accessKey := resource.GetString("app.cloud.aws-access-key-id")
	secretKey := resource.GetString("app.cloud.aws-secret-access-key")
	if accessKey != "" && secretKey != "" {
		optFns = append(optFns, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		))
	}

	return awsconfig.LoadDefaultConfig(ctx, optFns...)
}
