package services

import (
	"context"

	"github.com/robfig/cron/v3"

	"github.com/Emnet-tes/Art-Auction/internal/domain"
	"github.com/Emnet-tes/Art-Auction/pkg/logger"
)

// CronCloserScheduler runs the closer sweep on an in-process schedule. Only
// the elected leader sweeps, so multiple replicas don't all hammer the
// store; the sweep itself is idempotent either way.
type CronCloserScheduler struct {
	cron       *cron.Cron
	closer     *CloserService
	leader     domain.LeaderElection
	instanceID string
	schedule   string
	log        logger.Logger
}

func NewCronCloserScheduler(
	closer *CloserService,
	leader domain.LeaderElection,
	instanceID string,
	schedule string,
	log logger.Logger,
) *CronCloserScheduler {
	return &CronCloserScheduler{
		cron:       cron.New(),
		closer:     closer,
		leader:     leader,
		instanceID: instanceID,
		schedule:   schedule,
		log:        log,
	}
}

func (s *CronCloserScheduler) Start(ctx context.Context) error {
	s.log.Info("Starting auction closer scheduler", "schedule", s.schedule)

	_, err := s.cron.AddFunc(s.schedule, func() {
		s.sweep(ctx)
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

func (s *CronCloserScheduler) Stop() error {
	s.log.Info("Stopping auction closer scheduler")
	s.cron.Stop()
	return nil
}

func (s *CronCloserScheduler) sweep(ctx context.Context) {
	isLeader, err := s.leader.IsLeader(ctx, s.instanceID)
	if err != nil {
		s.log.Error("Failed to check leadership", "error", err)
		return
	}
	if !isLeader {
		return
	}

	report, err := s.closer.CloseExpired(ctx)
	if err != nil {
		s.log.Error("Scheduled auction sweep failed", "error", err)
		return
	}

	for _, message := range report.Messages {
		s.log.Info("Auction closed", "outcome", message)
	}
}
