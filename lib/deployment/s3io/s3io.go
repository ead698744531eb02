package s3io

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/openmed-ai/species-recognition/lib"
)

// ObjectAPI is the slice of the S3 API we use.
type ObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

func NewClient(ctx context.Context, region string) (*s3.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return s3.NewFromConfig(cfg), nil
}

// ParseURI splits an s3://bucket/key uri.
func ParseURI(uri string) (bucket, key string, err error) {
	trimmed := strings.TrimPrefix(uri, "s3://")
	if trimmed == uri {
		return "", "", fmt.Errorf("not an s3 uri: %s", uri)
	}
	parts := strings.SplitN(trimmed, "/", 2)
	if len(parts) != 2 || parts[0] == "" {
		return "", "", fmt.Errorf("not an s3 uri: %s", uri)
	}
	return parts[0], parts[1], nil
}

// Upload writes body to the given s3 uri.
func Upload(ctx context.Context, api ObjectAPI, uri string, body io.Reader) error {
	bucket, key, err := ParseURI(uri)
	if err != nil {
		return err
	}

	_, err = api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("upload %s: %w", uri, err)
	}
	return nil
}

// UploadRecords writes records as JSONL inference requests, one per
// line, in the format SplitType=Line transform jobs expect.
func UploadRecords(ctx context.Context, api ObjectAPI, uri string, records []*lib.Record) error {
	var b strings.Builder
	enc := json.NewEncoder(&b)
	for _, r := range records {
		if err := enc.Encode(lib.InferenceRequest{Inputs: r.Text}); err != nil {
			return err
		}
	}
	return Upload(ctx, api, uri, strings.NewReader(b.String()))
}

// FetchTransformOutput downloads every .out object under the output
// prefix and parses one prediction list per line. Objects are read in
// key order, which matches the input file order.
func FetchTransformOutput(ctx context.Context, api ObjectAPI, outputURI string) ([][]lib.Prediction, error) {
	bucket, prefix, err := ParseURI(outputURI)
	if err != nil {
		return nil, err
	}

	// transform jobs can emit more objects than one List page returns
	var keys []string
	var continuation *string
	for {
		list, err := api.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
			Bucket:            aws.String(bucket),
			Prefix:            aws.String(prefix),
			ContinuationToken: continuation,
		})
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", outputURI, err)
		}

		for _, obj := range list.Contents {
			if obj.Key != nil && strings.HasSuffix(*obj.Key, ".out") {
				keys = append(keys, *obj.Key)
			}
		}

		if !aws.ToBool(list.IsTruncated) {
			break
		}
		continuation = list.NextContinuationToken
	}
	sort.Strings(keys)

	var results [][]lib.Prediction
	for _, key := range keys {
		out, err := api.GetObject(ctx, &s3.GetObjectInput{
			Bucket: aws.String(bucket),
			Key:    aws.String(key),
		})
		if err != nil {
			return nil, fmt.Errorf("get s3://%s/%s: %w", bucket, key, err)
		}

		scanner := bufio.NewScanner(out.Body)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			var predictions []lib.Prediction
			if err := json.Unmarshal([]byte(line), &predictions); err != nil {
				out.Body.Close()
				return nil, fmt.Errorf("parse line in s3://%s/%s: %w", bucket, key, err)
			}
			results = append(results, predictions)
		}
		err = scanner.Err()
		out.Body.Close()
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
