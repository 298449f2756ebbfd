package argo

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xeipuuv/gojsonschema"
)

// listResponse mirrors the shape of the Argo list endpoint response. Items
// are kept raw so that a single malformed entry cannot poison the decode of
// the whole collection.
type listResponse struct {
	Items []json.RawMessage `json:"items"`
}

// workflowItem is the subset of an Argo workflow object this system reads.
type workflowItem struct {
	Metadata struct {
		Name            string `json:"name"`
		OwnerReferences []struct {
			Kind string `json:"kind"`
			Name string `json:"name"`
		} `json:"ownerReferences"`
	} `json:"metadata"`
	Status struct {
		Phase                      string `json:"phase"`
		StartedAt                  string `json:"startedAt"`
		FinishedAt                 string `json:"finishedAt"`
		StoredWorkflowTemplateSpec struct {
			ServiceAccountName string `json:"serviceAccountName"`
		} `json:"storedWorkflowTemplateSpec"`
	} `json:"status"`
}

// ParseWorkflowList decodes an Argo list response body into WorkflowRun
// records. Entries that fail schema validation or carry an unparseable start
// timestamp are skipped with a warning log line rather than failing the call.
func ParseWorkflowList(body []byte, logger *slog.Logger) ([]WorkflowRun, error) {
	var list listResponse
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("failed to parse workflow list: %w", err)
	}

	schemaLoader := gojsonschema.NewStringLoader(workflowItemSchema)

	runs := make([]WorkflowRun, 0, len(list.Items))
	for i, raw := range list.Items {
		result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(raw))
		if err != nil {
			logger.Warn("skipping unreadable workflow item", "index", i, "error", err)
			continue
		}
		if !result.Valid() {
			logger.Warn("skipping invalid workflow item", "index", i, "reason", firstViolation(result))
			continue
		}

		var item workflowItem
		if err := json.Unmarshal(raw, &item); err != nil {
			logger.Warn("skipping undecodable workflow item", "index", i, "error", err)
			continue
		}

		run, err := mapItem(item)
		if err != nil {
			logger.Warn("skipping workflow item", "index", i, "name", item.Metadata.Name, "error", err)
			continue
		}
		runs = append(runs, run)
	}
	return runs, nil
}

// firstViolation summarizes a schema validation failure in one line.
func firstViolation(result *gojsonschema.Result) string {
	errs := result.Errors()
	if len(errs) == 0 {
		return "schema validation failed"
	}
	field := errs[0].Field()
	if field == "" {
		field = "(root)"
	}
	return fmt.Sprintf("%s: %s", field, errs[0].Description())
}

// mapItem converts a validated workflow item into a WorkflowRun.
func mapItem(item workflowItem) (WorkflowRun, error) {
	started, err := time.Parse(time.RFC3339, item.Status.StartedAt)
	if err != nil {
		return WorkflowRun{}, fmt.Errorf("bad start timestamp %q: %w", item.Status.StartedAt, err)
	}

	run := WorkflowRun{
		Name:           TemplateName(item.Metadata.Name),
		RunID:          item.Metadata.Name,
		Phase:          phaseFromStatus(item.Status.Phase),
		StartedAt:      started,
		ServiceAccount: item.Status.StoredWorkflowTemplateSpec.ServiceAccountName,
	}

	if item.Status.FinishedAt != "" {
		finished, err := time.Parse(time.RFC3339, item.Status.FinishedAt)
		if err != nil {
			return WorkflowRun{}, fmt.Errorf("bad end timestamp %q: %w", item.Status.FinishedAt, err)
		}
		run.FinishedAt = &finished
	}

	if len(item.Metadata.OwnerReferences) > 0 {
		run.OwnerKind = item.Metadata.OwnerReferences[0].Kind
		run.OwnerName = item.Metadata.OwnerReferences[0].Name
	}

	return run, nil
}

// TemplateName derives the workflow template identity from a run id by
// stripping the generated suffix after the final dash. Run ids without a dash
// are returned unchanged.
func TemplateName(runID string) string {
	idx := strings.LastIndex(runID, "-")
	if idx <= 0 {
		return runID
	}
	return runID[:idx]
}
