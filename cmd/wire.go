package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/bnema/deathchest/internal/adapters/config"
	"github.com/bnema/deathchest/internal/adapters/host/sim"
	claimsrender "github.com/bnema/deathchest/internal/adapters/render/claims"
	"github.com/bnema/deathchest/internal/adapters/repo/jsonfile"
	"github.com/bnema/deathchest/internal/adapters/repo/sqlite"
	"github.com/bnema/deathchest/internal/application"
	"github.com/bnema/deathchest/internal/domain"
	"github.com/bnema/deathchest/internal/ports"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type app struct {
	settings config.Settings
	logger   *logrus.Logger
	repo     ports.SavedInventoryRepository
	codec    ports.ItemCodec
	clock    ports.Clock
	admin    *application.AdminService

	renderList   func([]application.ClaimSummary, claimsrender.RenderOptions) (string, error)
	renderDetail func(domain.SavedInventory, claimsrender.RenderOptions) (string, error)

	closers []io.Closer
}

func wireApp() (*app, error) {
	settings, err := config.Load(viper.New(), "", "")
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := newLogger(settings.LogLevel, settings.LogFormat, os.Stderr)
	if err != nil {
		return nil, err
	}

	clock := ports.SystemClock{}
	a := &app{
		settings:     settings,
		logger:       logger,
		codec:        sim.Codec{},
		clock:        clock,
		renderList:   claimsrender.RenderList,
		renderDetail: claimsrender.RenderDetail,
	}

	switch settings.StorageDriver {
	case config.DriverSQLite:
		store, err := sqlite.Open(settings.StoragePath, clock)
		if err != nil {
			return nil, fmt.Errorf("wire sqlite saved inventory store: %w", err)
		}
		a.repo = store
		a.closers = append(a.closers, store)
	default:
		repo, err := jsonfile.NewRepository(settings.StoragePath)
		if err != nil {
			return nil, fmt.Errorf("wire saved inventory repository: %w", err)
		}
		a.repo = repo
	}

	a.admin = application.NewAdminService(a.repo, settings, config.NewClaimPointWriter(settings.ConfigFile), logger)
	logger.WithFields(logrus.Fields{
		"driver": settings.StorageDriver,
		"path":   settings.StoragePath,
	}).Debug("saved inventory storage wired")

	return a, nil
}

// newListener builds the event listener against the app's storage and the
// given claim point.
func (a *app) newListener(point ports.ClaimPointSource) *application.Listener {
	capture := application.NewCaptureService(a.repo, a.codec, a.clock, a.logger, a.settings.ClaimCapacity)
	claims := application.NewClaimService(a.repo, a.codec, point, a.clock, a.logger, application.ClaimConfig{
		Capacity: a.settings.ClaimCapacity,
		Title:    a.settings.ClaimTitle,
	})
	return application.NewListener(capture, claims)
}

func (a *app) renderOptions() claimsrender.RenderOptions {
	return claimsrender.RenderOptions{
		Now:      a.clock.Now(),
		Capacity: a.settings.ClaimCapacity,
		Codec:    a.codec,
	}
}

func (a *app) Close() error {
	var errs []error
	for _, closer := range a.closers {
		if err := closer.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func newLogger(level, format string, out io.Writer) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(out)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	logger.SetLevel(parsed)

	switch strings.ToLower(format) {
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	default:
		return nil, fmt.Errorf("unsupported log format %q", format)
	}

	return logger, nil
}
