package main

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	glog "github.com/cloudwego/hertz/pkg/common/hlog"
	hertzadapter "github.com/hertz-contrib/logger/zerolog"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/streadway/amqp"
)

func main() {
	_ = godotenv.Load()
	initLogger()

	mode := os.Getenv("APP_MODE")
	if mode == "" {
		mode = "server"
	}

	switch mode {
	case "server":
		runServer()
	case "worker":
		runWorker()
	default:
		log.Fatal().Str("mode", mode).Msg("unknown APP_MODE, expected server or worker")
	}
}

func initLogger() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	glog.SetLogger(hertzadapter.From(log.Logger))
}

func runWorker() {
	rabbitmqUrl := os.Getenv("RABBITMQ_URL")
	if rabbitmqUrl == "" {
		log.Fatal().Msg("empty RABBITMQ_URL in env")
	}

	r2AccountId := os.Getenv("R2_ACCOUNT_ID")
	if r2AccountId == "" {
		log.Fatal().Msg("empty R2_ACCOUNT_ID in environment")
	}
	r2Bucket := os.Getenv("R2_BUCKET")
	if r2Bucket == "" {
		log.Fatal().Msg("empty R2_BUCKET in environment")
	}
	r2SecretKey := os.Getenv("R2_SECRET_KEY")
	if r2SecretKey == "" {
		log.Fatal().Msg("empty R2_SECRET_KEY in environment")
	}
	r2AccessKey := os.Getenv("R2_ACCESS_KEY")
	if r2AccessKey == "" {
		log.Fatal().Msg("empty R2_ACCESS_KEY in environment")
	}
	r2Config := R2Config{
		AccountID: r2AccountId,
		AccessKey: r2AccessKey,
		SecretKey: r2SecretKey,
		Bucket:    r2Bucket,
	}
	awsConfig, err := config.LoadDefaultConfig(context.TODO(),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(r2Config.AccessKey, r2Config.SecretKey, "")),
		config.WithRegion("auto"),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating aws config")
	}

	conn, err := amqp.Dial(rabbitmqUrl)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to RabbitMQ")
	}

	numWorkers := 3
	if v := os.Getenv("WORKER_COUNT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			log.Fatal().Str("value", v).Msg("invalid WORKER_COUNT in env")
		}
		numWorkers = n
	}

	workerConfig := WorkerConfig{
		R2:          &r2Config,
		AwsConfig:   &awsConfig,
		RabbitMQURL: rabbitmqUrl,
		RabbitConn:  conn,
	}

	log.Info().Int("workers", numWorkers).Msg("starting consumer worker pool")
	workerConfig.StartConsumerWorkerPool(numWorkers)
}
