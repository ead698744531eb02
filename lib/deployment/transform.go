package deployment

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sagemaker"
	"github.com/aws/aws-sdk-go-v2/service/sagemaker/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// TransformSpec describes an offline batch transform run. Input is a
// JSONL file (one inference request per line) under InputS3Uri; the
// service writes one response per line under OutputS3Uri.
type TransformSpec struct {
	InputS3Uri    string `mapstructure:"input_s3_uri"`
	OutputS3Uri   string `mapstructure:"output_s3_uri"`
	InstanceType  string `mapstructure:"instance_type"`
	InstanceCount int32  `mapstructure:"instance_count"`
}

// StartTransform submits a batch transform job against the deployed
// model and returns the generated job name.
func (d *Deployer) StartTransform(ctx context.Context, spec TransformSpec) (string, error) {
	jobName := fmt.Sprintf("%s-transform-%s", d.conf.ModelName, uuid.New().String()[:8])

	_, err := d.api.CreateTransformJob(ctx, &sagemaker.CreateTransformJobInput{
		TransformJobName: aws.String(jobName),
		ModelName:        aws.String(d.conf.ModelName),
		TransformInput: &types.TransformInput{
			DataSource: &types.TransformDataSource{
				S3DataSource: &types.TransformS3DataSource{
					S3DataType: types.S3DataTypeS3Prefix,
					S3Uri:      aws.String(spec.InputS3Uri),
				},
			},
			ContentType: aws.String("application/json"),
			SplitType:   types.SplitTypeLine,
		},
		TransformOutput: &types.TransformOutput{
			S3OutputPath: aws.String(spec.OutputS3Uri),
			Accept:       aws.String("application/json"),
			AssembleWith: types.AssemblyTypeLine,
		},
		TransformResources: &types.TransformResources{
			InstanceType:  types.TransformInstanceType(spec.InstanceType),
			InstanceCount: aws.Int32(spec.InstanceCount),
		},
		BatchStrategy: types.BatchStrategySingleRecord,
	})
	if err != nil {
		return "", fmt.Errorf("create transform job %s: %w", jobName, err)
	}

	log.Info().Str("job", jobName).Str("input", spec.InputS3Uri).Msg("transform job started")
	return jobName, nil
}

type TransformStatus struct {
	Job           string `json:"job"`
	Status        string `json:"status"`
	FailureReason string `json:"failureReason,omitempty"`
}

func (d *Deployer) TransformStatus(ctx context.Context, jobName string) (TransformStatus, error) {
	out, err := d.api.DescribeTransformJob(ctx, &sagemaker.DescribeTransformJobInput{
		TransformJobName: aws.String(jobName),
	})
	if err != nil {
		return TransformStatus{}, err
	}

	s := TransformStatus{
		Job:    jobName,
		Status: string(out.TransformJobStatus),
	}
	if out.FailureReason != nil {
		s.FailureReason = *out.FailureReason
	}
	return s, nil
}

// WaitTransformDone polls until the job finishes, failing on Failed or
// Stopped terminal states.
func (d *Deployer) WaitTransformDone(ctx context.Context, jobName string) error {
	for {
		s, err := d.TransformStatus(ctx, jobName)
		if err != nil {
			return err
		}

		switch types.TransformJobStatus(s.Status) {
		case types.TransformJobStatusCompleted:
			log.Info().Str("job", jobName).Msg("transform job completed")
			return nil
		case types.TransformJobStatusFailed:
			return fmt.Errorf("transform job %s failed: %s", jobName, s.FailureReason)
		case types.TransformJobStatusStopped:
			return fmt.Errorf("transform job %s was stopped", jobName)
		}

		log.Debug().Str("job", jobName).Str("status", s.Status).Msg("waiting for transform job")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(d.PollInterval):
		}
	}
}

func (d *Deployer) StopTransform(ctx context.Context, jobName string) error {
	_, err := d.api.StopTransformJob(ctx, &sagemaker.StopTransformJobInput{
		TransformJobName: aws.String(jobName),
	})
	return err
}
