package main

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/google/uuid"
	"github.com/streadway/amqp"

	"resumeanalyzer/internal/analyzer"
)

type R2Config struct {
	AccountID string
	Bucket    string
	AccessKey string
	SecretKey string
}

type WorkerConfig struct {
	R2          *R2Config
	AwsConfig   *aws.Config
	RabbitConn  *amqp.Connection
	RabbitMQURL string
}

// AnalyzeJob is one queued analysis request: a staged résumé object
// plus the job description to score it against.
type AnalyzeJob struct {
	ID             uuid.UUID `json:"id"`
	ObjectKey      string    `json:"object_key"`
	Filename       string    `json:"filename"`
	JobDescription string    `json:"job_description"`
}

// AnalyzeUpdate is published to the updates exchange as a job moves
// through processing. Result is set only on completed updates.
type AnalyzeUpdate struct {
	JobID     uuid.UUID        `json:"job_id"`
	Status    string           `json:"status"`
	Message   string           `json:"message"`
	Result    *analyzer.Result `json:"result,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
}
