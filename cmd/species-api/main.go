package main

import (
	"context"
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/openmed-ai/species-recognition/lib"
	"github.com/openmed-ai/species-recognition/lib/blocklist"
	"github.com/openmed-ai/species-recognition/lib/deployment"
	"github.com/openmed-ai/species-recognition/lib/recogniser"
	http_recogniser "github.com/openmed-ai/species-recognition/lib/recogniser/http-recogniser"
	sagemaker_recogniser "github.com/openmed-ai/species-recognition/lib/recogniser/sagemaker-recogniser"
)

// config structure
type speciesAPIConfig struct {
	lib.BaseConfig
	Server struct {
		HttpPort int `mapstructure:"http_port"`
	}
	BlocklistPath string `mapstructure:"blocklist_path"`
	Recognisers   map[string]struct {
		Type         string
		Region       string
		EndpointName string `mapstructure:"endpoint_name"`
		Url          string
	}
	Deployment deployment.Config
}

var config speciesAPIConfig

func initConfig() {
	// Set default config values
	err := lib.InitializeConfig("./config/species-api.yml", map[string]interface{}{
		"log_level": "info",
		"server": map[string]interface{}{
			"http_port": 8080,
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

	// for each recogniser in the config, register a per-request client
	// factory. Clients carry per-run state so they are not shared
	// between concurrent requests; the underlying AWS runtime client is.
	recognisers := make(map[string]clientFactory, len(config.Recognisers))
	for name, r := range config.Recognisers {
		name, r := name, r
		switch r.Type {
		case "sagemaker":
			runtime, err := sagemaker_recogniser.NewRuntimeClient(ctx, r.Region)
			if err != nil {
				log.Fatal().Err(err).Send()
			}
			recognisers[name] = func() recogniser.Client {
				return sagemaker_recogniser.New(name, r.EndpointName, runtime, bl)
			}
		case "http":
			recognisers[name] = func() recogniser.Client {
				return http_recogniser.NewHostedClient(name, r.Url, bl)
			}
		default:
			log.Fatal().Str("recogniser", name).Str("type", r.Type).Msg("unknown recogniser type")
		}
	}
	if len(recognisers) == 0 {
		log.Fatal().Msg("no recognisers configured")
	}

	var deployer *deployment.Deployer
	if config.Deployment.EndpointName != "" {
		api, err := deployment.NewClient(ctx, config.Deployment.Region)
		if err != nil {
			log.Fatal().Err(err).Send()
		}
		deployer = deployment.New(api, config.Deployment)
	}

	r := gin.New()
	r.Use(gin.LoggerWithFormatter(lib.JsonLogFormatter), gin.Recovery(), cors.Default())

	c := controller{recognisers: recognisers, deployer: deployer}
	s := server{controller: c}
	s.RegisterRoutes(r)

	if err := r.Run(fmt.Sprintf(":%d", config.Server.HttpPort)); err != nil {
		log.Fatal().Err(err).Send()
	}
}
