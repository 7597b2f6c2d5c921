package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the greeting job on a cron spec (UTC).
type Scheduler struct {
	cron    *cron.Cron
	spec    string
	ctx     context.Context
	cancel  context.CancelFunc
	greetFn func(ctx context.Context) error
}

func New(spec string) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		cron:   cron.New(cron.WithLocation(time.UTC)),
		spec:   spec,
		ctx:    ctx,
		cancel: cancel,
	}
}

// SetGreetingFunction sets the job executed on every tick.
func (s *Scheduler) SetGreetingFunction(f func(ctx context.Context) error) {
	s.greetFn = f
}

func (s *Scheduler) Start() error {
	if s.greetFn == nil {
		log.Println("greeting function not set, scheduler will not run")
		return nil
	}

	_, err := s.cron.AddFunc(s.spec, func() {
		log.Printf("triggered scheduled greeting generation (%s UTC)", s.spec)
		if err := s.greetFn(s.ctx); err != nil {
			log.Printf("scheduled greeting generation failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Printf("scheduler started, greeting cron spec %q (UTC)", s.spec)
	return nil
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
	if s.cancel != nil {
		s.cancel()
	}
	log.Println("scheduler stopped")
}

func (s *Scheduler) IsRunning() bool {
	return s.cron != nil && len(s.cron.Entries()) > 0
}
