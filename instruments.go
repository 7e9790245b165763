package taskgroup

import "github.com/ygrebnov/taskgroup/metrics"

// Instrument names reported through the configured metrics.Provider.
const (
	MetricTasksAppended    = "taskgroup_tasks_appended_total"
	MetricTasksFailed      = "taskgroup_tasks_failed_total"
	MetricTasksSkipped     = "taskgroup_tasks_skipped_total"
	MetricTasksOutstanding = "taskgroup_tasks_outstanding"
	MetricTaskDuration     = "taskgroup_task_duration_seconds"
)

type instruments struct {
	appended    metrics.Counter
	failed      metrics.Counter
	skipped     metrics.Counter
	outstanding metrics.UpDownCounter
	duration    metrics.Histogram
}

func newInstruments(p metrics.Provider) instruments {
	return instruments{
		appended: p.Counter(MetricTasksAppended,
			metrics.WithDescription("tasks appended to the group"), metrics.WithUnit("1")),
		failed: p.Counter(MetricTasksFailed,
			metrics.WithDescription("tasks that completed with an error"), metrics.WithUnit("1")),
		skipped: p.Counter(MetricTasksSkipped,
			metrics.WithDescription("tasks completed without running after a failure"), metrics.WithUnit("1")),
		outstanding: p.UpDownCounter(MetricTasksOutstanding,
			metrics.WithDescription("appended tasks not yet completed"), metrics.WithUnit("1")),
		duration: p.Histogram(MetricTaskDuration,
			metrics.WithDescription("task execution time"), metrics.WithUnit("s")),
	}
}
