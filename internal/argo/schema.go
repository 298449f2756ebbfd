package argo

// workflowItemSchema is the JSON Schema each list item must satisfy before it
// is mapped into a WorkflowRun. Items that fail validation are skipped with a
// warning; they are not a hard failure for the whole response.
const workflowItemSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["metadata", "status"],
  "properties": {
    "metadata": {
      "type": "object",
      "required": ["name"],
      "properties": {
        "name": { "type": "string", "minLength": 1 }
      }
    },
    "status": {
      "type": "object",
      "required": ["startedAt"],
      "properties": {
        "phase": { "type": "string" },
        "startedAt": { "type": "string", "minLength": 1 },
        "finishedAt": { "type": ["string", "null"] }
      }
    }
  }
}`
