// Package geoserver hosts the standalone GEOINT tool server: an HTTP
// surface over the in-memory triple store and its graph tools.
package geoserver

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vAirpower/aws-strands-mcp-knowledge-graph/internal/util"
	"github.com/vAirpower/aws-strands-mcp-knowledge-graph/pkg/logger"
	"github.com/vAirpower/aws-strands-mcp-knowledge-graph/pkg/store"

	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return err
	}
	return nil
}

func Init() {
	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	triples := store.NewTripleStore()
	loaded := triples.LoadSampleData()
	logger.Info("Loaded sample facilities into in-memory RDF store", "facilities", loaded, "triples", triples.Len())

	e.Use(middleware.CORS())
	e.Use(middleware.RequestLogger())
	e.Use(middleware.Recover())

	RegisterRoutes(e, triples)

	go func() {
		port := util.GetEnvString("GEO_PORT", "8000")
		logger.Info("Starting tool server", "port", port)
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed shutting down tool server", "err", err)
		}
	}()

	<-ctx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Failed to shutdown tool server", "err", err)
	}
}
