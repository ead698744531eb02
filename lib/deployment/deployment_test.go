package deployment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sagemaker"
	"github.com/aws/aws-sdk-go-v2/service/sagemaker/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	mocks "github.com/openmed-ai/species-recognition/gen/mocks/deployment"
)

type deploymentSuite struct {
	suite.Suite
}

func TestDeploymentSuite(t *testing.T) {
	suite.Run(t, new(deploymentSuite))
}

func testConfig() Config {
	return Config{
		Region:          "us-east-1",
		ModelPackageArn: "arn:aws:sagemaker:us-east-1:123456789012:model-package/species-detection",
		RoleArn:         "arn:aws:iam::123456789012:role/SageMakerRole",
		ModelName:       "species-detection",
		EndpointName:    "species-detection-endpoint",
		InstanceType:    "ml.m5.xlarge",
		InstanceCount:   1,
	}
}

func (s *deploymentSuite) TestDeploy() {
	api := &mocks.API{}
	api.On("CreateModel", mock.Anything, mock.AnythingOfType("*sagemaker.CreateModelInput")).
		Return(&sagemaker.CreateModelOutput{}, nil)
	api.On("CreateEndpointConfig", mock.Anything, mock.AnythingOfType("*sagemaker.CreateEndpointConfigInput")).
		Return(&sagemaker.CreateEndpointConfigOutput{}, nil)
	api.On("CreateEndpoint", mock.Anything, mock.AnythingOfType("*sagemaker.CreateEndpointInput")).
		Return(&sagemaker.CreateEndpointOutput{}, nil)

	d := New(api, testConfig())
	s.Nil(d.Deploy(context.Background()))

	model := api.Calls[0].Arguments.Get(1).(*sagemaker.CreateModelInput)
	s.Equal("species-detection", *model.ModelName)
	s.Equal(testConfig().ModelPackageArn, *model.PrimaryContainer.ModelPackageName)
	s.True(*model.EnableNetworkIsolation)

	config := api.Calls[1].Arguments.Get(1).(*sagemaker.CreateEndpointConfigInput)
	s.Equal("species-detection-endpoint-config", *config.EndpointConfigName)
	s.Require().Len(config.ProductionVariants, 1)
	s.Equal(types.ProductionVariantInstanceType("ml.m5.xlarge"), config.ProductionVariants[0].InstanceType)
	s.Equal(int32(1), *config.ProductionVariants[0].InitialInstanceCount)

	endpoint := api.Calls[2].Arguments.Get(1).(*sagemaker.CreateEndpointInput)
	s.Equal("species-detection-endpoint", *endpoint.EndpointName)
	s.Equal("species-detection-endpoint-config", *endpoint.EndpointConfigName)
}

func (s *deploymentSuite) TestDeployCreateModelFails() {
	api := &mocks.API{}
	api.On("CreateModel", mock.Anything, mock.AnythingOfType("*sagemaker.CreateModelInput")).
		Return(nil, errors.New("AccessDeniedException"))

	d := New(api, testConfig())
	err := d.Deploy(context.Background())

	s.Error(err)
	s.Contains(err.Error(), "create model")
	api.AssertNotCalled(s.T(), "CreateEndpointConfig")
}

func (s *deploymentSuite) TestWaitInService() {
	api := &mocks.API{}
	api.On("DescribeEndpoint", mock.Anything, mock.AnythingOfType("*sagemaker.DescribeEndpointInput")).
		Return(&sagemaker.DescribeEndpointOutput{EndpointStatus: types.EndpointStatusCreating}, nil).Once()
	api.On("DescribeEndpoint", mock.Anything, mock.AnythingOfType("*sagemaker.DescribeEndpointInput")).
		Return(&sagemaker.DescribeEndpointOutput{EndpointStatus: types.EndpointStatusInService}, nil).Once()

	d := New(api, testConfig())
	d.PollInterval = time.Millisecond

	s.Nil(d.WaitInService(context.Background()))
	api.AssertNumberOfCalls(s.T(), "DescribeEndpoint", 2)
}

func (s *deploymentSuite) TestWaitInServiceFailedEndpoint() {
	api := &mocks.API{}
	api.On("DescribeEndpoint", mock.Anything, mock.AnythingOfType("*sagemaker.DescribeEndpointInput")).
		Return(&sagemaker.DescribeEndpointOutput{
			EndpointStatus: types.EndpointStatusFailed,
			FailureReason:  aws.String("insufficient capacity"),
		}, nil)

	d := New(api, testConfig())
	d.PollInterval = time.Millisecond

	err := d.WaitInService(context.Background())
	s.Error(err)
	s.Contains(err.Error(), "insufficient capacity")
}

func (s *deploymentSuite) TestWaitInServiceHonoursContext() {
	api := &mocks.API{}
	api.On("DescribeEndpoint", mock.Anything, mock.AnythingOfType("*sagemaker.DescribeEndpointInput")).
		Return(&sagemaker.DescribeEndpointOutput{EndpointStatus: types.EndpointStatusCreating}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := New(api, testConfig())
	d.PollInterval = time.Hour

	s.ErrorIs(d.WaitInService(ctx), context.Canceled)
}

type notFoundErr struct{}

func (notFoundErr) Error() string                 { return "Could not find endpoint" }
func (notFoundErr) ErrorCode() string             { return "ValidationException" }
func (notFoundErr) ErrorMessage() string          { return "Could not find endpoint" }
func (notFoundErr) ErrorFault() smithy.ErrorFault { return smithy.FaultClient }

func (s *deploymentSuite) TestTeardownSkipsMissingResources() {
	api := &mocks.API{}
	api.On("DeleteEndpoint", mock.Anything, mock.AnythingOfType("*sagemaker.DeleteEndpointInput")).
		Return(nil, notFoundErr{})
	api.On("DeleteEndpointConfig", mock.Anything, mock.AnythingOfType("*sagemaker.DeleteEndpointConfigInput")).
		Return(&sagemaker.DeleteEndpointConfigOutput{}, nil)
	api.On("DeleteModel", mock.Anything, mock.AnythingOfType("*sagemaker.DeleteModelInput")).
		Return(&sagemaker.DeleteModelOutput{}, nil)

	d := New(api, testConfig())
	s.Nil(d.Teardown(context.Background()))
	api.AssertNumberOfCalls(s.T(), "DeleteModel", 1)
}

func (s *deploymentSuite) TestTeardownSurfacesRealErrors() {
	api := &mocks.API{}
	api.On("DeleteEndpoint", mock.Anything, mock.AnythingOfType("*sagemaker.DeleteEndpointInput")).
		Return(nil, errors.New("AccessDeniedException"))

	d := New(api, testConfig())
	s.Error(d.Teardown(context.Background()))
	api.AssertNotCalled(s.T(), "DeleteModel")
}

func (s *deploymentSuite) TestStartTransform() {
	api := &mocks.API{}
	api.On("CreateTransformJob", mock.Anything, mock.AnythingOfType("*sagemaker.CreateTransformJobInput")).
		Return(&sagemaker.CreateTransformJobOutput{}, nil)

	d := New(api, testConfig())
	jobName, err := d.StartTransform(context.Background(), TransformSpec{
		InputS3Uri:    "s3://openmed-batch/input/records.jsonl",
		OutputS3Uri:   "s3://openmed-batch/output/",
		InstanceType:  "ml.m5.xlarge",
		InstanceCount: 1,
	})

	s.Nil(err)
	s.Contains(jobName, "species-detection-transform-")

	input := api.Calls[0].Arguments.Get(1).(*sagemaker.CreateTransformJobInput)
	s.Equal(jobName, *input.TransformJobName)
	s.Equal(types.SplitTypeLine, input.TransformInput.SplitType)
	s.Equal(types.AssemblyTypeLine, input.TransformOutput.AssembleWith)
	s.Equal(types.BatchStrategySingleRecord, input.BatchStrategy)
	s.Equal("s3://openmed-batch/input/records.jsonl", *input.TransformInput.DataSource.S3DataSource.S3Uri)
}

func (s *deploymentSuite) TestWaitTransformDone() {
	api := &mocks.API{}
	api.On("DescribeTransformJob", mock.Anything, mock.AnythingOfType("*sagemaker.DescribeTransformJobInput")).
		Return(&sagemaker.DescribeTransformJobOutput{TransformJobStatus: types.TransformJobStatusInProgress}, nil).Once()
	api.On("DescribeTransformJob", mock.Anything, mock.AnythingOfType("*sagemaker.DescribeTransformJobInput")).
		Return(&sagemaker.DescribeTransformJobOutput{TransformJobStatus: types.TransformJobStatusCompleted}, nil).Once()

	d := New(api, testConfig())
	d.PollInterval = time.Millisecond

	s.Nil(d.WaitTransformDone(context.Background(), "species-detection-transform-abc12345"))
}

func (s *deploymentSuite) TestWaitTransformDoneFailure() {
	api := &mocks.API{}
	api.On("DescribeTransformJob", mock.Anything, mock.AnythingOfType("*sagemaker.DescribeTransformJobInput")).
		Return(&sagemaker.DescribeTransformJobOutput{
			TransformJobStatus: types.TransformJobStatusFailed,
			FailureReason:      aws.String("input data not found"),
		}, nil)

	d := New(api, testConfig())
	d.PollInterval = time.Millisecond

	err := d.WaitTransformDone(context.Background(), "species-detection-transform-abc12345")
	s.Error(err)
	s.Contains(err.Error(), "input data not found")
}
