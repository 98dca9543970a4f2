package main

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
	"github.com/streadway/amqp"

	"resumeanalyzer/internal/analyzer"
)

// processJob downloads the staged résumé and runs the analysis
// pipeline, publishing a status update either way. Downloads are
// retried since network failures are transient; the pipeline itself
// is total and cannot fail, so a downloaded document always produces
// a completed update. The downloaded bytes are scoped to this call
// and released when it returns.
func processJob(ctx context.Context, job AnalyzeJob, workerConfig *WorkerConfig) {
	awsClient := s3.NewFromConfig(*workerConfig.AwsConfig, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", workerConfig.R2.AccountID))
	})

	fileBytes, err := retry(3, func() ([]byte, error) {
		return DownloadFromR2(ctx, awsClient, workerConfig.R2.Bucket, job.ObjectKey)
	})
	if err != nil {
		log.Error().Err(err).
			Str("job_id", job.ID.String()).
			Str("object_key", job.ObjectKey).
			Msg("failed to download resume after retries")
		update := AnalyzeUpdate{
			JobID:   job.ID,
			Status:  "failed",
			Message: fmt.Sprintf("file download error: %v", err),
		}
		if err := publishAnalyzeUpdate(workerConfig.RabbitConn, update); err != nil {
			log.Error().Err(err).Str("job_id", job.ID.String()).Msg("failed to publish update")
		}
		return
	}

	result := analyzer.Analyze(fileBytes, job.Filename, job.JobDescription)

	log.Info().
		Str("job_id", job.ID.String()).
		Float64("ats_score", result.ATSScore).
		Int("keywords", len(result.Keywords)).
		Msg("resume analyzed")

	update := AnalyzeUpdate{
		JobID:   job.ID,
		Status:  "completed",
		Message: "analysis completed",
		Result:  &result,
	}
	if err := publishAnalyzeUpdate(workerConfig.RabbitConn, update); err != nil {
		log.Error().Err(err).Str("job_id", job.ID.String()).Msg("failed to publish update")
	}
}

func worker(id int, workerConfig *WorkerConfig, wg *sync.WaitGroup) {
	defer wg.Done()

	conn, err := amqp.Dial(workerConfig.RabbitMQURL)
	if err != nil {
		log.Fatal().Err(err).Msg("error dialling rabbitmq")
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatal().Err(err).Msg("error opening rabbitmq channel")
	}
	defer ch.Close()

	_, err = ch.QueueDeclare(
		"analyses", // queue name
		true,       // durable (survives broker restarts)
		false,      // auto-delete when unused
		false,      // exclusive
		false,      // no-wait
		nil,        // arguments
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to declare queue")
	}

	msgs, err := ch.Consume(
		"analyses", // queue name
		"",         // consumer tag
		true,       // auto-ack
		false,      // exclusive
		false,      // no-local
		false,      // no-wait
		nil,        // arguments
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error consuming rabbitmq messages")
	}

	for msg := range msgs {
		var job AnalyzeJob
		if err := json.Unmarshal(msg.Body, &job); err != nil {
			log.Error().Err(err).Int("worker", id+1).Msg("error unmarshalling job message")
			continue
		}

		log.Info().
			Int("worker", id+1).
			Str("job_id", job.ID.String()).
			Str("filename", job.Filename).
			Msg("processing analysis job")

		processJob(context.Background(), job, workerConfig)
	}
}

func (workerConfig *WorkerConfig) StartConsumerWorkerPool(numWorkers int) {
	var wg sync.WaitGroup
	wg.Add(numWorkers)

	for i := range numWorkers {
		log.Info().Int("worker", i+1).Msg("worker started")
		go worker(i, workerConfig, &wg)
	}
	wg.Wait() // block until all workers finish
}
