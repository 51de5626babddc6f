package jobs

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"synnovator.backend/internal/domain/entities"
	"synnovator.backend/internal/domain/repositories"
	"synnovator.backend/internal/usecases"
)

// sweepPageSize is the hackathon page fetched per List call; the sweep walks
// pages until a short one.
const sweepPageSize = 200

// sweepStatuses are the hackathon states worth checking; draft and archived
// events have no teams to police.
var sweepStatuses = []entities.HackathonStatus{
	entities.HackathonStatusRegistrationOpen,
	entities.HackathonStatusInProgress,
	entities.HackathonStatusJudging,
}

type hackathonLister interface {
	List(ctx context.Context, filter repositories.HackathonFilter, limit, offset int) ([]*entities.Hackathon, int64, error)
}

type teamLister interface {
	ListByHackathon(ctx context.Context, hackathonID uuid.UUID) ([]*entities.Team, error)
}

type complianceChecker interface {
	CheckTeam(ctx context.Context, teamID uuid.UUID) ([]usecases.RuleCheckResult, error)
}

// ComplianceSweepJob periodically re-checks every team in active hackathons
// against the mandatory rules, recording violations for anything that drifted
// out of compliance since the last pass.
type ComplianceSweepJob struct {
	hackathons hackathonLister
	teams      teamLister
	checker    complianceChecker
	interval   time.Duration
	stop       chan struct{}
}

func NewComplianceSweepJob(hackathons hackathonLister, teams teamLister, checker complianceChecker, interval time.Duration) *ComplianceSweepJob {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &ComplianceSweepJob{
		hackathons: hackathons,
		teams:      teams,
		checker:    checker,
		interval:   interval,
		stop:       make(chan struct{}),
	}
}

func (j *ComplianceSweepJob) Start(ctx context.Context) {
	log.Println("🕐 Starting compliance sweep job...")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("⏹️ Compliance sweep job stopped (context cancelled)")
			return
		case <-j.stop:
			log.Println("⏹️ Compliance sweep job stopped")
			return
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

func (j *ComplianceSweepJob) Stop() {
	close(j.stop)
}

func (j *ComplianceSweepJob) sweep(ctx context.Context) {
	checked := 0
	flagged := 0

	for _, status := range sweepStatuses {
		for offset := 0; ; offset += sweepPageSize {
			hackathons, _, err := j.hackathons.List(ctx, repositories.HackathonFilter{Status: string(status)}, sweepPageSize, offset)
			if err != nil {
				log.Printf("❌ Error listing %s hackathons: %v", status, err)
				break
			}

			for _, h := range hackathons {
				teams, err := j.teams.ListByHackathon(ctx, h.ID)
				if err != nil {
					log.Printf("❌ Error listing teams for hackathon %s: %v", h.ID, err)
					continue
				}

				for _, team := range teams {
					results, err := j.checker.CheckTeam(ctx, team.ID)
					if err != nil {
						log.Printf("❌ Error checking team %s: %v", team.ID, err)
						continue
					}
					checked++
					for _, result := range results {
						if !result.Compliant {
							flagged++
							break
						}
					}
				}
			}

			if len(hackathons) < sweepPageSize {
				break
			}
		}
	}

	if flagged > 0 {
		log.Printf("🔎 Compliance sweep checked %d teams, %d non-compliant", checked, flagged)
	}
}
