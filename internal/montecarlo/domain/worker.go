package domain

// Worker 单次使用的定价工作单元：一组参数加一个专属采样器。
// 一次构造、一次运行、一个结果，运行期间不向其他线程暴露任何可变状态。
type Worker struct {
	id      int
	params  SimulationParameters
	sampler NormalSampler
}

// NewWorker 创建定价工作单元，参数与采样器的所有权随之转移给 Worker
func NewWorker(id int, params SimulationParameters, sampler NormalSampler) *Worker {
	return &Worker{id: id, params: params, sampler: sampler}
}

// Run 依次计算 call 与 put，产出一个 PricingResult
func (w *Worker) Run() (PricingResult, error) {
	call, err := PriceCall(w.params, w.sampler)
	if err != nil {
		return PricingResult{}, err
	}
	put, err := PricePut(w.params, w.sampler)
	if err != nil {
		return PricingResult{}, err
	}
	return PricingResult{
		Params:    w.params,
		CallPrice: call,
		PutPrice:  put,
		WorkerID:  w.id,
		Core:      -1,
	}, nil
}
