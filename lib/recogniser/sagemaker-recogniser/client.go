package sagemaker_recogniser

import (
	"context"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sagemakerruntime"
)

// NewRuntimeClient builds a real SageMaker runtime client from the
// ambient AWS credential chain.
func NewRuntimeClient(ctx context.Context, region string) (*sagemakerruntime.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return sagemakerruntime.NewFromConfig(cfg), nil
}
