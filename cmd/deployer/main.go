package main

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/openmed-ai/species-recognition/lib"
	"github.com/openmed-ai/species-recognition/lib/deployment"
	"github.com/openmed-ai/species-recognition/lib/deployment/s3io"
	"github.com/openmed-ai/species-recognition/lib/record"
	"github.com/openmed-ai/species-recognition/lib/text"
)

// config structure
type deployerConfig struct {
	lib.BaseConfig
	Deployment  deployment.Config
	WaitMinutes int `mapstructure:"wait_minutes"`
	Transform   struct {
		InputPath     string `mapstructure:"input_path"`
		InputFormat   string `mapstructure:"input_format"`
		TextColumn    string `mapstructure:"text_column"`
		InputS3Uri    string `mapstructure:"input_s3_uri"`
		OutputS3Uri   string `mapstructure:"output_s3_uri"`
		InstanceType  string `mapstructure:"instance_type"`
		InstanceCount int32  `mapstructure:"instance_count"`
		OutputPath    string `mapstructure:"output_path"`
	}
}

var config deployerConfig

func initConfig() {
	// Set default config values
	err := lib.InitializeConfig("./config/deployer.yml", map[string]interface{}{
		"log_level":    "info",
		"wait_minutes": 30,
		"deployment": map[string]interface{}{
			"instance_type":  "ml.m5.xlarge",
			"instance_count": 1,
		},
		"transform": map[string]interface{}{
			"input_format":   "csv",
			"text_column":    "text",
			"instance_type":  "ml.m5.xlarge",
			"instance_count": 1,
		},
	}, &config)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}

func main() {
	initConfig()
	go lib.HandleInterrupt()

	if pflag.NArg() < 1 {
		log.Fatal().Msg("usage: deployer <deploy|status|teardown|transform|transform-status|stop-transform|fetch-output> [job-name]")
	}
	action := pflag.Arg(0)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(config.WaitMinutes)*time.Minute)
	defer cancel()

	api, err := deployment.NewClient(ctx, config.Deployment.Region)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
	deployer := deployment.New(api, config.Deployment)

	switch action {
	case "deploy":
		if err := deployer.Deploy(ctx); err != nil {
			log.Fatal().Err(err).Send()
		}
		if err := deployer.WaitInService(ctx); err != nil {
			log.Fatal().Err(err).Send()
		}
	case "status":
		status, err := deployer.Status(ctx)
		if err != nil {
			log.Fatal().Err(err).Send()
		}
		printJSON(status)
	case "teardown":
		if err := deployer.Teardown(ctx); err != nil {
			log.Fatal().Err(err).Send()
		}
	case "transform":
		if err := runTransform(ctx, deployer); err != nil {
			log.Fatal().Err(err).Send()
		}
	case "transform-status":
		status, err := deployer.TransformStatus(ctx, jobNameArg())
		if err != nil {
			log.Fatal().Err(err).Send()
		}
		printJSON(status)
	case "stop-transform":
		if err := deployer.StopTransform(ctx, jobNameArg()); err != nil {
			log.Fatal().Err(err).Send()
		}
	case "fetch-output":
		if err := fetchOutput(ctx); err != nil {
			log.Fatal().Err(err).Send()
		}
	default:
		log.Fatal().Str("action", action).Msg("unknown action")
	}
}

func jobNameArg() string {
	if pflag.NArg() < 2 {
		log.Fatal().Msg("a transform job name is required")
	}
	return pflag.Arg(1)
}

// runTransform drives a full offline run: upload the input records,
// submit the job, wait for it, then join the predictions back onto the
// records.
func runTransform(ctx context.Context, deployer *deployment.Deployer) error {
	records, err := readRecords()
	if err != nil {
		return err
	}

	objects, err := s3io.NewClient(ctx, config.Deployment.Region)
	if err != nil {
		return err
	}

	if err := s3io.UploadRecords(ctx, objects, config.Transform.InputS3Uri, records); err != nil {
		return err
	}
	log.Info().Int("records", len(records)).Str("uri", config.Transform.InputS3Uri).Msg("input uploaded")

	jobName, err := deployer.StartTransform(ctx, deployment.TransformSpec{
		InputS3Uri:    config.Transform.InputS3Uri,
		OutputS3Uri:   config.Transform.OutputS3Uri,
		InstanceType:  config.Transform.InstanceType,
		InstanceCount: config.Transform.InstanceCount,
	})
	if err != nil {
		return err
	}

	if err := deployer.WaitTransformDone(ctx, jobName); err != nil {
		return err
	}

	return writeResults(ctx, objects, records)
}

// fetchOutput joins an already completed job's output onto the local
// input records.
func fetchOutput(ctx context.Context) error {
	records, err := readRecords()
	if err != nil {
		return err
	}

	objects, err := s3io.NewClient(ctx, config.Deployment.Region)
	if err != nil {
		return err
	}

	return writeResults(ctx, objects, records)
}

func readRecords() ([]*lib.Record, error) {
	in, err := os.Open(config.Transform.InputPath)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	var reader record.Reader
	switch config.Transform.InputFormat {
	case "jsonl":
		reader = record.JSONLReader{}
	default:
		reader = record.CSVReader{TextColumn: config.Transform.TextColumn}
	}

	var records []*lib.Record
	err = reader.ReadRecordsWithCallback(in, func(r *lib.Record) error {
		records = append(records, &lib.Record{
			Index: len(records),
			Text:  text.NormalizeText(r.Text),
		})
		return nil
	})
	return records, err
}

// writeResults downloads the transform output and writes one result
// per record. The service keeps line order, so predictions are paired
// with records by position.
func writeResults(ctx context.Context, objects s3io.ObjectAPI, records []*lib.Record) error {
	predictions, err := s3io.FetchTransformOutput(ctx, objects, config.Transform.OutputS3Uri)
	if err != nil {
		return err
	}
	if len(predictions) != len(records) {
		log.Warn().
			Int("records", len(records)).
			Int("outputs", len(predictions)).
			Msg("transform output count does not match input")
	}

	var out io.Writer = os.Stdout
	if config.Transform.OutputPath != "" {
		f, err := os.Create(config.Transform.OutputPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	for i, r := range records {
		if i >= len(predictions) {
			break
		}
		result := lib.NewRecordResult(r, predictions[i])
		result.TokenCount = text.CountTokens(r.Text)
		if err := enc.Encode(result); err != nil {
			return err
		}
	}
	return nil
}

func printJSON(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Send()
	}
	os.Stdout.Write(append(b, '\n'))
}
