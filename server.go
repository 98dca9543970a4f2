package main

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/google/uuid"
	"github.com/hertz-contrib/cors"
	"github.com/rs/zerolog/log"

	"resumeanalyzer/internal/analyzer"
)

func runServer() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	h := server.Default(server.WithHostPorts(":" + port))

	// Open CORS so a local frontend can talk to the API directly.
	h.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"*"},
		MaxAge:          12 * time.Hour,
	}))

	registerRoutes(h)

	log.Info().Str("port", port).Msg("starting analysis server")
	h.Spin()
}

func registerRoutes(h *server.Hertz) {
	api := h.Group("/api/v1")

	api.POST("/analyze", handleAnalyze)

	api.GET("/health", func(c context.Context, ctx *app.RequestContext) {
		ctx.JSON(consts.StatusOK, utils.H{"status": "ok"})
	})
}

// handleAnalyze accepts a résumé file and a job description as
// multipart form data and returns the analysis result. The uploaded
// bytes live only for this request; nothing is written to disk or
// kept after the response. Missing inputs are rejected here so the
// pipeline only ever sees complete requests.
func handleAnalyze(c context.Context, ctx *app.RequestContext) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(consts.StatusBadRequest, utils.H{"error": "file is required"})
		return
	}

	jobDescription := ctx.PostForm("job_description")
	if strings.TrimSpace(jobDescription) == "" {
		ctx.JSON(consts.StatusBadRequest, utils.H{"error": "job_description is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(consts.StatusInternalServerError, utils.H{"error": "failed to open uploaded file"})
		return
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		ctx.JSON(consts.StatusInternalServerError, utils.H{"error": "failed to read uploaded file"})
		return
	}

	result := analyzer.Analyze(fileBytes, fileHeader.Filename, jobDescription)

	log.Info().
		Str("request_id", uuid.NewString()).
		Str("filename", fileHeader.Filename).
		Float64("ats_score", result.ATSScore).
		Int("keywords", len(result.Keywords)).
		Msg("resume analyzed")

	ctx.JSON(consts.StatusOK, result)
}
