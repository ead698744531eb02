package main

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/openmed-ai/species-recognition/lib"
	"github.com/openmed-ai/species-recognition/lib/analysis"
	"github.com/openmed-ai/species-recognition/lib/blocklist"
	"github.com/openmed-ai/species-recognition/lib/cache/remote"
	"github.com/openmed-ai/species-recognition/lib/recogniser"
	http_recogniser "github.com/openmed-ai/species-recognition/lib/recogniser/http-recogniser"
	sagemaker_recogniser "github.com/openmed-ai/species-recognition/lib/recogniser/sagemaker-recogniser"
	"github.com/openmed-ai/species-recognition/lib/record"
	"github.com/openmed-ai/species-recognition/lib/store"
)

// config structure
type batchProcessorConfig struct {
	lib.BaseConfig
	Input struct {
		Path       string
		Format     string
		TextColumn string `mapstructure:"text_column"`
	}
	Output struct {
		Path string
	}
	Recogniser struct {
		Name         string
		Type         string
		Region       string
		EndpointName string `mapstructure:"endpoint_name"`
		Url          string
		MaxWorkers   int `mapstructure:"max_workers"`
	}
	BlocklistPath string  `mapstructure:"blocklist_path"`
	MinScore      float64 `mapstructure:"min_score"`
	Thresholds    analysis.Thresholds
	Cache         struct {
		Enabled bool
		Redis   remote.RedisConfig
	}
	Elasticsearch struct {
		Enabled bool
		Host    string
		Port    int
		Index   string
	}
}

var config batchProcessorConfig

func initConfig() {
	// Set default config values
	err := lib.InitializeConfig("./config/batch-processor.yml", map[string]interface{}{
		"log_level": "info",
		"input": map[string]interface{}{
			"format":      "csv",
			"text_column": "text",
		},
		"recogniser": map[string]interface{}{
			"name":        "species-detection",
			"type":        "sagemaker",
			"max_workers": lib.DefaultMaxWorkers,
		},
		"min_score": 0.0,
		"thresholds": map[string]interface{}{
			"high":   0.90,
			"medium": 0.70,
		},
		"cache": map[string]interface{}{
			"enabled": false,
			"redis": map[string]interface{}{
				"host": "localhost",
				"port": 6379,
			},
		},
		"elasticsearch": map[string]interface{}{
			"enabled": false,
			"host":    "localhost",
			"port":    9200,
			"index":   "species-predictions",
		},
	}, &config)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}

func main() {
	initConfig()
	ctx := context.Background()

	bl := blocklist.Blocklist{
		CaseSensitive:   map[string]bool{},
		CaseInsensitive: map[string]bool{},
	}
	if config.BlocklistPath != "" {
		loaded, err := blocklist.Load(config.BlocklistPath)
		if err != nil {
			log.Fatal().Err(err).Send()
		}
		bl = *loaded
	}

	var client recogniser.Client
	switch config.Recogniser.Type {
	case "sagemaker":
		runtime, err := sagemaker_recogniser.NewRuntimeClient(ctx, config.Recogniser.Region)
		if err != nil {
			log.Fatal().Err(err).Send()
		}
		client = sagemaker_recogniser.New(config.Recogniser.Name, config.Recogniser.EndpointName, runtime, bl)
	case "http":
		client = http_recogniser.NewHostedClient(config.Recogniser.Name, config.Recogniser.Url, bl)
	default:
		log.Fatal().Str("type", config.Recogniser.Type).Msg("unknown recogniser type")
	}

	var reader record.Reader
	switch config.Input.Format {
	case "csv":
		reader = record.CSVReader{TextColumn: config.Input.TextColumn}
	case "jsonl":
		reader = record.JSONLReader{}
	default:
		log.Fatal().Str("format", config.Input.Format).Msg("unknown input format")
	}

	var remoteCache remote.Client
	if config.Cache.Enabled {
		remoteCache = remote.NewRedisClient(config.Cache.Redis)
	}

	var esStore *store.Store
	if config.Elasticsearch.Enabled {
		var err error
		esStore, err = store.NewElasticsearchStore(store.ElasticsearchConfig{
			Host:  config.Elasticsearch.Host,
			Port:  config.Elasticsearch.Port,
			Index: config.Elasticsearch.Index,
		})
		if err != nil {
			log.Fatal().Err(err).Send()
		}
	}

	in, err := os.Open(config.Input.Path)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
	defer in.Close()

	var out io.Writer = os.Stdout
	if config.Output.Path != "" {
		f, err := os.Create(config.Output.Path)
		if err != nil {
			log.Fatal().Err(err).Send()
		}
		defer f.Close()
		out = f
	}

	p := processor{
		reader: reader,
		client: client,
		opts: lib.RecogniserOptions{
			Name:       config.Recogniser.Name,
			MaxWorkers: config.Recogniser.MaxWorkers,
		},
		remoteCache: remoteCache,
		store:       esStore,
		minScore:    config.MinScore,
		thresholds:  config.Thresholds,
	}

	report, err := p.Run(ctx, in, out)
	if err != nil {
		log.Fatal().Err(err).Send()
	}

	logReport(report)
}

func logReport(report analysis.Report) {
	log.Info().
		Int("records", report.Records).
		Int("failed", report.Failed).
		Int("entities", report.TotalEntities).
		Int("tokens", report.TotalTokens).
		Float64("mean_score", report.Scores.Mean).
		Float64("min_score", report.Scores.Min).
		Float64("max_score", report.Scores.Max).
		Int("high_confidence", report.Buckets[analysis.BucketHigh]).
		Int("medium_confidence", report.Buckets[analysis.BucketMedium]).
		Int("low_confidence", report.Buckets[analysis.BucketLow]).
		Msg("batch run complete")

	for _, species := range analysis.TopSpecies(report, 10) {
		log.Info().
			Str("species", species.Species).
			Int("occurrences", species.Occurrences).
			Float64("mean_score", species.MeanScore).
			Msg("species found")
	}
}
