//go:build !linux

package affinity

// Supported 报告当前平台是否支持亲和性绑定
func Supported() bool { return false }

// Pin 在没有原生亲和性 API 的平台上退化为 no-op
func Pin(core int) error { return nil }
