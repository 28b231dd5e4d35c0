package application

import (
	"context"
	"errors"
	"testing"

	"github.com/wyfcoding/optionpricing/internal/montecarlo/domain"
)

type fakeRepo struct {
	runs    map[string]*domain.PricingRun
	saveErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{runs: make(map[string]*domain.PricingRun)}
}

func (r *fakeRepo) Save(ctx context.Context, run *domain.PricingRun) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.runs[run.RunID] = run
	return nil
}

func (r *fakeRepo) Get(ctx context.Context, runID string) (*domain.PricingRun, error) {
	return r.runs[runID], nil
}

func (r *fakeRepo) List(ctx context.Context, limit int) ([]*domain.PricingRun, error) {
	out := make([]*domain.PricingRun, 0, len(r.runs))
	for _, run := range r.runs {
		out = append(out, run)
	}
	return out, nil
}

type fakeSink struct {
	published []string
	err       error
}

func (s *fakeSink) Publish(ctx context.Context, requestID string, result domain.PricingResult) error {
	if s.err != nil {
		return s.err
	}
	s.published = append(s.published, requestID)
	return nil
}

type fakePublisher struct {
	events int
	err    error
}

func (p *fakePublisher) PublishResult(ctx context.Context, runID string, result domain.PricingResult) error {
	if p.err != nil {
		return p.err
	}
	p.events++
	return nil
}

func newTestService(repo domain.PricingRunRepository, pub domain.ResultPublisher, sink domain.ResultSink) *PricingApplicationService {
	svc := NewPricingApplicationService(repo, pub, sink, nil)
	seed := int64(0)
	svc.Command().WithSamplerFactory(func() domain.NormalSampler {
		seed++
		return domain.NewSeededGaussianSampler(seed)
	})
	return svc
}

func referenceCommand() RunSimulationCommand {
	return RunSimulationCommand{
		RequestID:       "req-1",
		Source:          domain.RunSourceHTTP,
		NumberOfPaths:   50000,
		UnderlyingPrice: 100,
		StrikePrice:     100,
		RiskFreeRate:    0.05,
		Volatility:      0.2,
		Maturity:        1.0,
	}
}

func TestRunSimulation_Success(t *testing.T) {
	repo := newFakeRepo()
	sink := &fakeSink{}
	pub := &fakePublisher{}
	svc := newTestService(repo, pub, sink)

	dto, err := svc.RunSimulation(context.Background(), referenceCommand())
	if err != nil {
		t.Fatalf("run err: %v", err)
	}
	if dto.RunID != "req-1" {
		t.Fatalf("run id mismatch: %s", dto.RunID)
	}
	if dto.CallPrice <= 0 || dto.PutPrice <= 0 {
		t.Fatalf("unexpected prices: call=%v put=%v", dto.CallPrice, dto.PutPrice)
	}
	// 5 万条路径下估计值应落在解析值附近
	if dto.CallPrice < 9 || dto.CallPrice > 12 {
		t.Fatalf("call price implausible: %v", dto.CallPrice)
	}
	if _, ok := repo.runs["req-1"]; !ok {
		t.Fatalf("run was not persisted")
	}
	if len(sink.published) != 1 || sink.published[0] != "req-1" {
		t.Fatalf("sink publish mismatch: %v", sink.published)
	}
	if pub.events != 1 {
		t.Fatalf("expected 1 published event, got %d", pub.events)
	}
}

func TestRunSimulation_ValidationFailsFast(t *testing.T) {
	repo := newFakeRepo()
	sink := &fakeSink{}
	svc := newTestService(repo, nil, sink)

	cmd := referenceCommand()
	cmd.NumberOfPaths = 0
	if _, err := svc.RunSimulation(context.Background(), cmd); err == nil {
		t.Fatalf("expected validation error")
	}
	if len(repo.runs) != 0 {
		t.Fatalf("nothing may be persisted on validation failure")
	}
	if len(sink.published) != 0 {
		t.Fatalf("nothing may be delivered on validation failure")
	}
}

func TestRunSimulation_DeliveryFailureIsNonFatal(t *testing.T) {
	// 交付失败只记录日志，定价结果仍然有效并正常返回
	repo := newFakeRepo()
	sink := &fakeSink{err: errors.New("bucket unavailable")}
	pub := &fakePublisher{err: errors.New("broker down")}
	svc := newTestService(repo, pub, sink)

	dto, err := svc.RunSimulation(context.Background(), referenceCommand())
	if err != nil {
		t.Fatalf("delivery failure must not fail the run: %v", err)
	}
	if dto.CallPrice <= 0 {
		t.Fatalf("result must still be complete: %v", dto.CallPrice)
	}
	if _, ok := repo.runs["req-1"]; !ok {
		t.Fatalf("run must still be persisted")
	}
}

func TestRunSimulation_GeneratesRunID(t *testing.T) {
	svc := newTestService(newFakeRepo(), nil, nil)
	cmd := referenceCommand()
	cmd.RequestID = ""

	dto, err := svc.RunSimulation(context.Background(), cmd)
	if err != nil {
		t.Fatalf("run err: %v", err)
	}
	if dto.RunID == "" {
		t.Fatalf("run id must be generated when request id is empty")
	}
}

func TestGetRun_NotFound(t *testing.T) {
	svc := newTestService(newFakeRepo(), nil, nil)
	if _, err := svc.GetRun(context.Background(), "missing"); err == nil {
		t.Fatalf("expected not-found error")
	}
}
