package jira

import (
	"encoding/json"
	"fmt"
)

// SearchRequest is the body of POST /rest/api/3/search/jql.
type SearchRequest struct {
	JQL        string   `json:"jql"`
	StartAt    int      `json:"startAt,omitempty"`
	MaxResults int      `json:"maxResults,omitempty"`
	Fields     []string `json:"fields,omitempty"`
}

type SearchResponse struct {
	Issues []Issue `json:"issues"`
	Total  int     `json:"total,omitempty"`
}

type Issue struct {
	ID     string      `json:"id"`
	Key    string      `json:"key"`
	Fields IssueFields `json:"fields"`
}

type IssueFields struct {
	Summary  string `json:"summary"`
	Status   struct {
		Name string `json:"name"`
	} `json:"status"`
	Assignee *struct {
		DisplayName string `json:"displayName"`
	} `json:"assignee"`
	// Description is ADF on API v3 and plain text on older servers.
	Description json.RawMessage `json:"description"`
}

// WorklogRequest is the body of POST /rest/api/3/issue/{key}/worklog.
// Started uses the 2006-01-02T15:04:05.000-0700 layout.
type WorklogRequest struct {
	TimeSpent string         `json:"timeSpent"`
	Started   string         `json:"started"`
	Comment   map[string]any `json:"comment,omitempty"`
}

type WorklogResponse struct {
	ID               string `json:"id"`
	IssueID          string `json:"issueId"`
	TimeSpent        string `json:"timeSpent"`
	TimeSpentSeconds int    `json:"timeSpentSeconds"`
	Started          string `json:"started"`
}

// APIError is returned for non-2xx Jira responses.
type APIError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("jira %s status=%d body=%s", e.Op, e.StatusCode, e.Body)
}
