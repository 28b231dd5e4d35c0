package domain

import (
	"context"
	"testing"
)

// seededFactory 按创建顺序分配递增种子。Pool 在主 goroutine 中按
// worker 编号顺序创建采样器，因此 worker t 总是拿到种子 base+t。
func seededFactory(base int64) func() NormalSampler {
	next := base
	return func() NormalSampler {
		s := NewSeededGaussianSampler(next)
		next++
		return s
	}
}

func TestPool_ScenarioAssignment(t *testing.T) {
	// 每个 worker 定价独立场景：worker t 的标的价格为 S+t
	const numWorkers = 4
	base := referenceParams(20000)

	pool, err := NewPool(numWorkers, WithSamplerFactory(seededFactory(10)))
	if err != nil {
		t.Fatalf("pool err: %v", err)
	}
	results, err := pool.Run(context.Background(), base)
	if err != nil {
		t.Fatalf("run err: %v", err)
	}
	if len(results) != numWorkers {
		t.Fatalf("expected %d results, got %d", numWorkers, len(results))
	}

	for i, r := range results {
		if r.WorkerID != i {
			t.Fatalf("result %d carries worker id %d", i, r.WorkerID)
		}
		if want := base.S + float64(i); r.Params.S != want {
			t.Fatalf("worker %d spot mismatch: got=%v want=%v", i, r.Params.S, want)
		}

		// 每个结果只取决于自己的种子和场景，与其他 worker 的执行顺序无关
		solo, err := NewWorker(i, base.WithSpot(base.S+float64(i)), NewSeededGaussianSampler(10+int64(i))).Run()
		if err != nil {
			t.Fatalf("solo run err: %v", err)
		}
		if r.CallPrice != solo.CallPrice || r.PutPrice != solo.PutPrice {
			t.Fatalf("worker %d result depends on pool execution: pool=(%v,%v) solo=(%v,%v)",
				i, r.CallPrice, r.PutPrice, solo.CallPrice, solo.PutPrice)
		}
	}
}

func TestPool_CoreMapping(t *testing.T) {
	// 4 个 worker、2 个核：0→0, 1→1, 2→0, 3→1
	pool, err := NewPool(4, WithCores(2))
	if err != nil {
		t.Fatalf("pool err: %v", err)
	}
	want := []int{0, 1, 0, 1}
	for tID, core := range want {
		if got := pool.CoreFor(tID); got != core {
			t.Fatalf("worker %d core mismatch: got=%d want=%d", tID, got, core)
		}
	}
}

func TestPool_AffinityRunCompletes(t *testing.T) {
	// 亲和性只是调度提示，绑定失败也不能中断运行
	pool, err := NewPool(3, WithAffinity(true), WithSamplerFactory(seededFactory(1)))
	if err != nil {
		t.Fatalf("pool err: %v", err)
	}
	results, err := pool.Run(context.Background(), referenceParams(5000))
	if err != nil {
		t.Fatalf("run err: %v", err)
	}
	for i, r := range results {
		if r.CallPrice < 0 || r.PutPrice < 0 {
			t.Fatalf("worker %d produced negative price", i)
		}
	}
}

func TestPool_InvalidSize(t *testing.T) {
	if _, err := NewPool(0); err == nil {
		t.Fatalf("expected error for zero workers")
	}
}

func TestPool_RejectsInvalidParams(t *testing.T) {
	pool, err := NewPool(2)
	if err != nil {
		t.Fatalf("pool err: %v", err)
	}
	base := referenceParams(0)
	if _, err := pool.Run(context.Background(), base); err == nil {
		t.Fatalf("expected validation error before any simulation work")
	}
}
