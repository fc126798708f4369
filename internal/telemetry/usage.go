package telemetry

import (
	"os"
	"runtime"

	"github.com/shirou/gopsutil/v4/process"
)

const report_resource_usage = "process.resource-usage"

// ReportResourceUsage reports what the run cost, it is called once at the end.
func ReportResourceUsage(tel API) {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)
	tel.ReportCount("process.allocated_mb", int64(memStats.TotalAlloc/1_000_000))

	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		tel.ReportWarning(report_resource_usage, err)
		return
	}
	mem, err := proc.MemoryInfo()
	if err != nil {
		tel.ReportWarning(report_resource_usage, err)
		return
	}
	tel.ReportCount("process.rss_mb", int64(mem.RSS/1_000_000))

	times, err := proc.Times()
	if err != nil {
		tel.ReportWarning(report_resource_usage, err)
		return
	}
	tel.ReportCount("process.cpu_ms", int64((times.User+times.System)*1000))
}
