package report

import (
	"fmt"
	"strings"

	"github.com/jonathan/argo-timeline/internal/argo"
)

// Filename returns the deterministic output filename for a filter:
//
//	argo_wfs_<YYYY>_<MM>_<DD>[_status_<phase>][_days_<N>][_full].html
//
// The status part is omitted for the default Succeeded phase and the days
// part for a single-day window; "_full" is appended only when both are
// omitted. Identical filters always yield identical names.
func Filename(f *ReportFilter) string {
	parts := []string{"argo_wfs", f.Date.Format("2006_01_02")}

	if f.Phase != argo.PhaseSucceeded {
		parts = append(parts, "status_"+strings.ToLower(string(f.Phase)))
	}
	if f.Days > 1 {
		parts = append(parts, fmt.Sprintf("days_%d", f.Days))
	}
	if len(parts) == 2 {
		parts = append(parts, "full")
	}

	return strings.Join(parts, "_") + ".html"
}
