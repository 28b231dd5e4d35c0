//go:build linux

// Package affinity 封装操作系统级的 CPU 亲和性调度提示。
// 绑定失败只影响调度局部性，不影响计算正确性。
package affinity

import (
	"golang.org/x/sys/unix"
)

// Supported 报告当前平台是否支持亲和性绑定
func Supported() bool { return true }

// Pin 将当前线程绑定到指定核。调用方必须先 runtime.LockOSThread，
// 否则 Go 调度器可能把 goroutine 迁移到别的线程上。
func Pin(core int) error {
	var set unix.CPUSet
	set.Zero()
	set.Set(core)
	return unix.SchedSetaffinity(0, &set)
}
