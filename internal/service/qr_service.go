// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-qr-history/internal/adapter"
	"github.com/MKhiriev/go-qr-history/internal/config"
	"github.com/MKhiriev/go-qr-history/internal/display"
	"github.com/MKhiriev/go-qr-history/internal/identity"
	"github.com/MKhiriev/go-qr-history/internal/logger"
	"github.com/MKhiriev/go-qr-history/internal/render"
	"github.com/MKhiriev/go-qr-history/internal/validators"
	"github.com/MKhiriev/go-qr-history/models"
)

type qrService struct {
	container *display.Container
	renderer  render.Renderer
	adapter   adapter.ServerAdapter
	identity  identity.Resolver
	validator validators.Validator
	job       UploadJob

	width         int
	height        int
	renderTimeout time.Duration
	now           func() time.Time

	logger *logger.Logger
}

// QROption customises a QRService.
type QROption func(*qrService)

// WithClock replaces time.Now for upload filenames.
func WithClock(now func() time.Time) QROption {
	return func(s *qrService) {
		s.now = now
	}
}

// WithValidator replaces the history record validator.
func WithValidator(v validators.Validator) QROption {
	return func(s *qrService) {
		s.validator = v
	}
}

// WithUploadJob replaces the default single-slot upload job.
func WithUploadJob(job UploadJob) QROption {
	return func(s *qrService) {
		s.job = job
	}
}

// NewQRService wires the handler. Zero size or timeout in cfg fall back to
// the defaults.
func NewQRService(
	container *display.Container,
	renderer render.Renderer,
	serverAdapter adapter.ServerAdapter,
	resolver identity.Resolver,
	cfg config.ClientRender,
	logger *logger.Logger,
	opts ...QROption,
) QRService {
	s := &qrService{
		container:     container,
		renderer:      renderer,
		adapter:       serverAdapter,
		identity:      resolver,
		validator:     validators.NewQRValidator(),
		job:           NewUploadJob(),
		width:         cfg.Width,
		height:        cfg.Height,
		renderTimeout: cfg.Timeout,
		now:           time.Now,
		logger:        logger,
	}
	if s.width <= 0 {
		s.width = models.DefaultQRWidth
	}
	if s.height <= 0 {
		s.height = models.DefaultQRHeight
	}
	if s.renderTimeout <= 0 {
		s.renderTimeout = config.DefaultRenderTimeout
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *qrService) Container() *display.Container {
	return s.container
}

func (s *qrService) Generate(ctx context.Context, text string) *render.Completion {
	log := logger.FromContextOr(ctx, s.logger)

	if strings.TrimSpace(text) == "" {
		s.container.Hide()
		log.Debug().Msg("empty input, qr container hidden")
		return render.Completed(nil)
	}

	req := models.QRRequest{
		Text:   text,
		Width:  s.width,
		Height: s.height,
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		log.Error().Err(err).Int("text_len", len(text)).Msg("qr request rejected")
		return render.Completed(err)
	}

	s.container.Show()
	target := s.container.Clear()

	done := s.renderer.Render(target, req)
	if done == nil {
		done = render.Completed(ErrNoRenderer)
	}

	s.job.Submit(ctx, func(jobCtx context.Context) {
		s.upload(jobCtx, text, target, done)
	})

	return done
}

// upload waits for the render, then posts the snapshot to the history
// endpoint. Every outcome ends up in the log.
func (s *qrService) upload(ctx context.Context, text string, target display.Target, done *render.Completion) {
	log := logger.FromContextOr(ctx, s.logger)

	waitCtx, cancel := context.WithTimeout(ctx, s.renderTimeout)
	err := done.Wait(waitCtx)
	cancel()

	if ctx.Err() != nil {
		log.Debug().Msg("qr upload superseded before render finished")
		return
	}

	surface, ok := target.Surface()
	if err != nil || !ok {
		if err == nil {
			err = ErrRenderSurfaceNotFound
		}
		log.Error().Err(err).Dur("wait", s.renderTimeout).Msg(ErrRenderSurfaceNotFound.Error())
		return
	}

	imageBase64, err := surface.EncodeBase64()
	if err != nil {
		log.Error().Err(err).Msg("qr image encoding failed")
		return
	}

	userID, err := s.identity.UserID(ctx)
	if err != nil {
		log.Error().Err(err).Msg("qr history user could not be resolved")
		return
	}

	record := models.QRUploadRecord{
		Text:          text,
		ImageFilename: QRImageFilename(s.now()),
		ImageBase64:   imageBase64,
		UserID:        userID,
	}

	if err = s.validator.Validate(ctx, record); err != nil {
		log.Error().Err(err).Str("filename", record.ImageFilename).Msg("invalid qr history record")
		return
	}

	resp, err := s.adapter.SaveQRHistory(ctx, record)
	if err != nil {
		if ctx.Err() != nil {
			log.Debug().Str("filename", record.ImageFilename).Msg("qr upload superseded")
			return
		}
		log.Error().Err(err).
			Str("filename", record.ImageFilename).
			Int64("user_id", userID).
			Msg("error saving qr history")
		return
	}

	log.Info().
		Str("filename", record.ImageFilename).
		Int64("user_id", userID).
		Interface("response", resp).
		Msg("qr history saved")
}

func (s *qrService) Wait() {
	s.job.Wait()
}

func (s *qrService) Stop() {
	s.job.Stop()
}
