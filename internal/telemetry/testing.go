package telemetry

import (
	"fmt"
	"sync"
	"testing"
)

type Report struct {
	Kind   string
	Id     string
	Params []any
	Count  int64
}

// TestAPI is an API that logs to the test and remembers every report so
// tests can assert on what a component reported.
type TestAPI struct {
	t       testing.TB
	mutex   sync.Mutex
	reports []Report
}

func NewTestAPI(t testing.TB) *TestAPI {
	return &TestAPI{t: t}
}

func (a *TestAPI) record(r Report) {
	a.mutex.Lock()
	defer a.mutex.Unlock()
	a.reports = append(a.reports, r)
	a.t.Log(r.Kind, r.Id, fmt.Sprint(r.Params...), r.Count)
}

func (a *TestAPI) ReportBroken(id string, params ...any) {
	a.record(Report{Kind: "broken", Id: id, Params: params})
}

func (a *TestAPI) ReportWarning(id string, params ...any) {
	a.record(Report{Kind: "warning", Id: id, Params: params})
}

func (a *TestAPI) ReportDebug(msg string, params ...any) {
	a.record(Report{Kind: "debug", Id: msg, Params: params})
}

func (a *TestAPI) ReportCount(id string, count int64) {
	a.record(Report{Kind: "count", Id: id, Count: count})
}

// Reports returns the reports of a given kind ("broken", "warning", "debug", "count").
func (a *TestAPI) Reports(kind string) []Report {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	var out []Report
	for _, r := range a.reports {
		if r.Kind == kind {
			out = append(out, r)
		}
	}
	return out
}
