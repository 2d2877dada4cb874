package scheduler

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"bizmanager/pkg/logger"
)

type JobScheduler interface {
	Start()
	Stop()
	AddJob(id, cronExpr string, task func()) error
	GetJob(id string) (*JobInfo, bool)
	IsRunning() bool
}

type JobInfo struct {
	ID       string
	CronExpr string
	LastRun  *time.Time
	NextRun  *time.Time
}

type GocronScheduler struct {
	scheduler *gocron.Scheduler
	jobs      map[string]*gocron.Job
	lastRuns  map[string]time.Time
	exprs     map[string]string
	mu        sync.RWMutex
	running   bool
}

// NewJobScheduler runs jobs in UTC; a job never overlaps with itself
func NewJobScheduler() JobScheduler {
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()

	return &GocronScheduler{
		scheduler: s,
		jobs:      make(map[string]*gocron.Job),
		lastRuns:  make(map[string]time.Time),
		exprs:     make(map[string]string),
	}
}

func (s *GocronScheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	s.scheduler.StartAsync()
	s.running = true
	logger.Info("Job scheduler started", "jobs", len(s.jobs))
}

func (s *GocronScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.scheduler.Stop()
	s.running = false
	logger.Info("Job scheduler stopped")
}

func (s *GocronScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

func (s *GocronScheduler) AddJob(id, cronExpr string, task func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.jobs[id]; exists {
		return fmt.Errorf("job with ID %s already exists", id)
	}

	job, err := s.scheduler.Cron(cronExpr).Tag(id).Do(func() {
		s.mu.Lock()
		s.lastRuns[id] = time.Now().UTC()
		s.mu.Unlock()

		logger.Debug("Executing job", "job_id", id)
		task()
	})
	if err != nil {
		return fmt.Errorf("failed to create job %s: %w", id, err)
	}

	s.jobs[id] = job
	s.exprs[id] = cronExpr
	logger.Info("Job added", "job_id", id, "cron", cronExpr)
	return nil
}

func (s *GocronScheduler) GetJob(id string) (*JobInfo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, exists := s.jobs[id]
	if !exists {
		return nil, false
	}

	info := &JobInfo{ID: id, CronExpr: s.exprs[id]}
	if last, ok := s.lastRuns[id]; ok {
		info.LastRun = &last
	}
	if next := job.NextRun(); !next.IsZero() {
		info.NextRun = &next
	}
	return info, true
}
