package deployment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sagemaker"
	"github.com/aws/aws-sdk-go-v2/service/sagemaker/types"
	"github.com/aws/smithy-go"
	"github.com/rs/zerolog/log"
)

const (
	variantName         = "AllTraffic"
	DefaultPollInterval = 15 * time.Second
)

// API is the slice of the SageMaker control-plane API we use.
type API interface {
	CreateModel(ctx context.Context, params *sagemaker.CreateModelInput, optFns ...func(*sagemaker.Options)) (*sagemaker.CreateModelOutput, error)
	CreateEndpointConfig(ctx context.Context, params *sagemaker.CreateEndpointConfigInput, optFns ...func(*sagemaker.Options)) (*sagemaker.CreateEndpointConfigOutput, error)
	CreateEndpoint(ctx context.Context, params *sagemaker.CreateEndpointInput, optFns ...func(*sagemaker.Options)) (*sagemaker.CreateEndpointOutput, error)
	DescribeEndpoint(ctx context.Context, params *sagemaker.DescribeEndpointInput, optFns ...func(*sagemaker.Options)) (*sagemaker.DescribeEndpointOutput, error)
	DeleteEndpoint(ctx context.Context, params *sagemaker.DeleteEndpointInput, optFns ...func(*sagemaker.Options)) (*sagemaker.DeleteEndpointOutput, error)
	DeleteEndpointConfig(ctx context.Context, params *sagemaker.DeleteEndpointConfigInput, optFns ...func(*sagemaker.Options)) (*sagemaker.DeleteEndpointConfigOutput, error)
	DeleteModel(ctx context.Context, params *sagemaker.DeleteModelInput, optFns ...func(*sagemaker.Options)) (*sagemaker.DeleteModelOutput, error)
	CreateTransformJob(ctx context.Context, params *sagemaker.CreateTransformJobInput, optFns ...func(*sagemaker.Options)) (*sagemaker.CreateTransformJobOutput, error)
	DescribeTransformJob(ctx context.Context, params *sagemaker.DescribeTransformJobInput, optFns ...func(*sagemaker.Options)) (*sagemaker.DescribeTransformJobOutput, error)
	StopTransformJob(ctx context.Context, params *sagemaker.StopTransformJobInput, optFns ...func(*sagemaker.Options)) (*sagemaker.StopTransformJobOutput, error)
}

type Config struct {
	Region          string `mapstructure:"region"`
	ModelPackageArn string `mapstructure:"model_package_arn"`
	RoleArn         string `mapstructure:"role_arn"`
	ModelName       string `mapstructure:"model_name"`
	EndpointName    string `mapstructure:"endpoint_name"`
	InstanceType    string `mapstructure:"instance_type"`
	InstanceCount   int32  `mapstructure:"instance_count"`
}

// NewClient builds a real SageMaker client from the ambient AWS
// credential chain.
func NewClient(ctx context.Context, region string) (*sagemaker.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return sagemaker.NewFromConfig(cfg), nil
}

func New(api API, conf Config) *Deployer {
	return &Deployer{
		api:          api,
		conf:         conf,
		PollInterval: DefaultPollInterval,
	}
}

// Deployer owns the lifecycle of a marketplace model package: model,
// endpoint config, endpoint, and offline transform jobs.
type Deployer struct {
	api          API
	conf         Config
	PollInterval time.Duration
}

func (d *Deployer) configName() string {
	return d.conf.EndpointName + "-config"
}

// Deploy creates the model from the subscribed model package, then an
// endpoint config and endpoint for it. The model package is opaque, so
// network isolation is always on.
func (d *Deployer) Deploy(ctx context.Context) error {
	_, err := d.api.CreateModel(ctx, &sagemaker.CreateModelInput{
		ModelName:        aws.String(d.conf.ModelName),
		ExecutionRoleArn: aws.String(d.conf.RoleArn),
		PrimaryContainer: &types.ContainerDefinition{
			ModelPackageName: aws.String(d.conf.ModelPackageArn),
		},
		EnableNetworkIsolation: aws.Bool(true),
	})
	if err != nil {
		return fmt.Errorf("create model %s: %w", d.conf.ModelName, err)
	}
	log.Info().Str("model", d.conf.ModelName).Msg("model created")

	_, err = d.api.CreateEndpointConfig(ctx, &sagemaker.CreateEndpointConfigInput{
		EndpointConfigName: aws.String(d.configName()),
		ProductionVariants: []types.ProductionVariant{
			{
				VariantName:          aws.String(variantName),
				ModelName:            aws.String(d.conf.ModelName),
				InitialInstanceCount: aws.Int32(d.conf.InstanceCount),
				InstanceType:         types.ProductionVariantInstanceType(d.conf.InstanceType),
				InitialVariantWeight: aws.Float32(1),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create endpoint config %s: %w", d.configName(), err)
	}
	log.Info().Str("endpoint_config", d.configName()).Msg("endpoint config created")

	_, err = d.api.CreateEndpoint(ctx, &sagemaker.CreateEndpointInput{
		EndpointName:       aws.String(d.conf.EndpointName),
		EndpointConfigName: aws.String(d.configName()),
	})
	if err != nil {
		return fmt.Errorf("create endpoint %s: %w", d.conf.EndpointName, err)
	}
	log.Info().Str("endpoint", d.conf.EndpointName).Msg("endpoint creation started")

	return nil
}

type Status struct {
	Endpoint      string `json:"endpoint"`
	Status        string `json:"status"`
	FailureReason string `json:"failureReason,omitempty"`
}

func (d *Deployer) Status(ctx context.Context) (Status, error) {
	out, err := d.api.DescribeEndpoint(ctx, &sagemaker.DescribeEndpointInput{
		EndpointName: aws.String(d.conf.EndpointName),
	})
	if err != nil {
		return Status{}, err
	}

	s := Status{
		Endpoint: d.conf.EndpointName,
		Status:   string(out.EndpointStatus),
	}
	if out.FailureReason != nil {
		s.FailureReason = *out.FailureReason
	}
	return s, nil
}

// WaitInService polls until the endpoint is in service. Provisioning
// takes several minutes, so callers should bound ctx with a deadline.
func (d *Deployer) WaitInService(ctx context.Context) error {
	for {
		s, err := d.Status(ctx)
		if err != nil {
			return err
		}

		switch types.EndpointStatus(s.Status) {
		case types.EndpointStatusInService:
			log.Info().Str("endpoint", s.Endpoint).Msg("endpoint in service")
			return nil
		case types.EndpointStatusFailed:
			return fmt.Errorf("endpoint %s failed: %s", s.Endpoint, s.FailureReason)
		}

		log.Debug().Str("endpoint", s.Endpoint).Str("status", s.Status).Msg("waiting for endpoint")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(d.PollInterval):
		}
	}
}

// Teardown removes the endpoint, endpoint config and model. Resources
// which no longer exist are skipped so teardown can be re-run.
func (d *Deployer) Teardown(ctx context.Context) error {
	_, err := d.api.DeleteEndpoint(ctx, &sagemaker.DeleteEndpointInput{
		EndpointName: aws.String(d.conf.EndpointName),
	})
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("delete endpoint %s: %w", d.conf.EndpointName, err)
	}

	_, err = d.api.DeleteEndpointConfig(ctx, &sagemaker.DeleteEndpointConfigInput{
		EndpointConfigName: aws.String(d.configName()),
	})
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("delete endpoint config %s: %w", d.configName(), err)
	}

	_, err = d.api.DeleteModel(ctx, &sagemaker.DeleteModelInput{
		ModelName: aws.String(d.conf.ModelName),
	})
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("delete model %s: %w", d.conf.ModelName, err)
	}

	log.Info().Str("endpoint", d.conf.EndpointName).Msg("teardown complete")
	return nil
}

// SageMaker reports missing resources as ValidationException rather
// than a dedicated not-found type.
func isNotFound(err error) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode() == "ValidationException"
	}
	return false
}
