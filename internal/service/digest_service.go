package service

import (
	"log"

	"github.com/robfig/cron/v3"

	"github.com/fvdberg/DCA-Planner-Backend/internal/repository"
	"github.com/fvdberg/DCA-Planner-Backend/internal/schedule"
	"github.com/fvdberg/DCA-Planner-Backend/internal/timezone"
)

// DigestService logs the enabled plans whose first execution date is today.
// It is strictly read-only: executing purchases and scheduling subsequent
// occurrences belong to whatever consumes the persisted plans.
type DigestService struct {
	planRepo *repository.PlanRepository
	tz       *timezone.Resolver
}

// NewDigestService creates a new DigestService.
func NewDigestService(planRepo *repository.PlanRepository, tz *timezone.Resolver) *DigestService {
	return &DigestService{
		planRepo: planRepo,
		tz:       tz,
	}
}

// Schedule registers the daily digest on the given cron runner, firing every
// morning in the resolved calendar zone.
func (s *DigestService) Schedule(c *cron.Cron) error {
	_, err := c.AddFunc("0 7 * * *", func() {
		if err := s.LogDuePlans(); err != nil {
			log.Printf("plan digest failed: %v", err)
		}
	})
	return err
}

// LogDuePlans writes one log line per enabled plan due today.
func (s *DigestService) LogDuePlans() error {
	today := s.tz.Today().Format(schedule.DateLayout)

	plans, err := s.planRepo.GetEnabledPlansByFirstDate(today)
	if err != nil {
		return err
	}

	if len(plans) == 0 {
		log.Printf("plan digest: no plans due on %s", today)
		return nil
	}

	for _, plan := range plans {
		log.Printf(
			"plan digest: %s (%s) due on %s: %.2f at %.2f%% fee, %s cycle",
			plan.FundName, plan.FundCode, today, plan.Amount, plan.FeeRate, plan.Cycle,
		)
	}
	return nil
}
