package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mwalsh-dev/statduel/internal/scrape"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Scheduler owns the two recurring jobs: the nightly ingestion run and the
// pre-generation of each day's game shortly after the day boundary.
type Scheduler struct {
	pipeline   *scrape.Pipeline
	generator  *GameGenerator
	cache      *CacheService
	logger     *logrus.Logger
	cron       *cron.Cron
	location   *time.Location
	scrapeCron string
	mu         sync.Mutex
	isRunning  bool
}

func NewScheduler(
	pipeline *scrape.Pipeline,
	generator *GameGenerator,
	cache *CacheService,
	logger *logrus.Logger,
	location *time.Location,
	scrapeCron string,
) *Scheduler {
	return &Scheduler{
		pipeline:   pipeline,
		generator:  generator,
		cache:      cache,
		logger:     logger,
		cron:       cron.New(cron.WithLocation(location)),
		location:   location,
		scrapeCron: scrapeCron,
	}
}

// Start registers the jobs and begins the schedule.
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("scheduler is already running")
	}

	if _, err := s.cron.AddFunc(s.scrapeCron, s.runScrape); err != nil {
		return fmt.Errorf("failed to schedule ingestion: %w", err)
	}

	// A few minutes past midnight so the first visitor of the day rarely pays
	// the generation cost.
	if _, err := s.cron.AddFunc("5 0 * * *", s.pregenerateGame); err != nil {
		return fmt.Errorf("failed to schedule game generation: %w", err)
	}

	s.cron.Start()
	s.isRunning = true
	s.logger.Info("Scheduler started")
	return nil
}

// Stop halts the schedule and waits for in-flight jobs.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.isRunning = false
	s.logger.Info("Scheduler stopped")
}

// TriggerScrape runs the ingestion pipeline outside the schedule.
func (s *Scheduler) TriggerScrape() {
	go s.runScrape()
}

func (s *Scheduler) runScrape() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	if err := s.pipeline.Run(ctx); err != nil {
		s.logger.Errorf("Ingestion run failed: %v", err)
		return
	}

	if err := s.cache.Delete(context.Background(), PlayersCacheKey()); err != nil {
		s.logger.Warnf("Failed to invalidate player cache: %v", err)
	}
}

func (s *Scheduler) pregenerateGame() {
	date := time.Now().In(s.location).Format("2006-01-02")
	if _, err := s.generator.Generate(date); err != nil {
		s.logger.Errorf("Failed to pre-generate game for %s: %v", date, err)
	}
}
