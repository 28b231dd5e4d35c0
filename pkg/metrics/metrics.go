// Package metrics 提供 Prometheus helper，覆盖定价服务的核心业务指标
package metrics

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wyfcoding/optionpricing/pkg/logger"
)

// Metrics 指标集合
type Metrics struct {
	// 定价运行计数
	SimulationsTotal prometheus.Counter
	// 定价运行耗时
	SimulationDuration prometheus.Histogram
	// 累计模拟路径数
	PathsSimulated prometheus.Counter
	// 正在运行的 worker 数
	ActiveWorkers prometheus.Gauge
	// 结果上传失败计数
	UploadFailuresTotal prometheus.Counter
	// 事件发布失败计数
	PublishFailuresTotal prometheus.Counter
}

// New 创建指标实例
func New(serviceName string) *Metrics {
	return &Metrics{
		SimulationsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pricing",
			Subsystem: serviceName,
			Name:      "simulations_total",
			Help:      "Total pricing simulations executed",
		}),
		SimulationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "pricing",
			Subsystem: serviceName,
			Name:      "simulation_duration_seconds",
			Help:      "Pricing simulation duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),
		PathsSimulated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pricing",
			Subsystem: serviceName,
			Name:      "paths_simulated_total",
			Help:      "Total Monte Carlo paths simulated",
		}),
		ActiveWorkers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "pricing",
			Subsystem: serviceName,
			Name:      "active_workers",
			Help:      "Number of workers currently pricing",
		}),
		UploadFailuresTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pricing",
			Subsystem: serviceName,
			Name:      "upload_failures_total",
			Help:      "Total result upload failures",
		}),
		PublishFailuresTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pricing",
			Subsystem: serviceName,
			Name:      "publish_failures_total",
			Help:      "Total result event publish failures",
		}),
	}
}

// Register 注册所有指标
func (m *Metrics) Register() error {
	collectors := []prometheus.Collector{
		m.SimulationsTotal,
		m.SimulationDuration,
		m.PathsSimulated,
		m.ActiveWorkers,
		m.UploadFailuresTotal,
		m.PublishFailuresTotal,
	}
	for _, c := range collectors {
		if err := prometheus.DefaultRegisterer.Register(c); err != nil {
			logger.Error(context.Background(), "Failed to register metric", "error", err)
			return err
		}
	}
	return nil
}

// StartHTTPServer 启动 Prometheus HTTP 服务器
func StartHTTPServer(port int, path string) error {
	if path == "" {
		path = "/metrics"
	}
	http.Handle(path, promhttp.Handler())
	addr := fmt.Sprintf(":%d", port)
	logger.Info(context.Background(), "Starting Prometheus HTTP server", "addr", addr, "path", path)
	return http.ListenAndServe(addr, nil)
}
