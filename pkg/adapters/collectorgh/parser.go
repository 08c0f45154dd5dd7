package collectorgh

import (
	"fmt"

	"github.com/agentstation/livingdoc/pkg/adapters"
	"github.com/agentstation/livingdoc/pkg/errors"
)

// Parse converts a collector-gh payload into the intermediate
// representation. The payload is assumed to match this adapter (detection
// is not re-validated); a structural failure anywhere yields an adapter
// error and no partial result.
func (a *Adapter) Parse(payload map[string]any) (*adapters.Result, error) {
	version, err := ExtractVersion(payload)
	if err != nil {
		return nil, err
	}
	warnings := CheckCompatibility(version)

	metadataDict, ok := adapters.LookupMap(payload, "metadata")
	if !ok {
		metadataDict = map[string]any{}
	}

	// The first declared repository anchors item IDs.
	repositories := adapters.LookupStrings(payload, "metadata", "source", "repositories")
	sourceRepo := fallbackRepository
	if len(repositories) > 0 {
		sourceRepo = repositories[0]
	}

	metadata := adapters.Metadata{
		Producer: adapters.Producer{
			Name:    adapters.StringOr(payload, "", "metadata", "generator", "name"),
			Version: adapters.StringOr(payload, "", "metadata", "generator", "version"),
			Build:   adapters.LookupStringPtr(payload, "metadata", "generator", "build"),
		},
		Run: adapters.Run{
			RunID:      adapters.LookupStringPtr(payload, "metadata", "run", "run_id"),
			RunAttempt: adapters.LookupStringPtr(payload, "metadata", "run", "run_attempt"),
			Actor:      adapters.LookupStringPtr(payload, "metadata", "run", "actor"),
			Workflow:   adapters.LookupStringPtr(payload, "metadata", "run", "workflow"),
			Ref:        adapters.LookupStringPtr(payload, "metadata", "run", "ref"),
			SHA:        adapters.LookupStringPtr(payload, "metadata", "run", "sha"),
		},
		Source: adapters.Source{
			Systems:      adapters.LookupStrings(payload, "metadata", "source", "systems"),
			Repositories: repositories,
			Organization: adapters.LookupStringPtr(payload, "metadata", "source", "organization"),
			Enterprise:   adapters.LookupStringPtr(payload, "metadata", "source", "enterprise"),
		},
		OriginalMetadata: metadataDict,
	}

	// An absent issues key means an empty export; a present but non-list
	// value is a malformed payload, not an empty one.
	var issues []any
	if raw, ok := adapters.LookupValue(payload, "issues"); ok {
		issues, ok = raw.([]any)
		if !ok {
			return nil, errors.NewAdapterError(Name,
				"issues field must be a list", nil)
		}
	}
	items := make([]adapters.Item, 0, len(issues))
	for _, raw := range issues {
		item, err := parseIssue(raw, sourceRepo)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return &adapters.Result{
		Items:    items,
		Metadata: metadata,
		Warnings: warnings,
	}, nil
}

// parseIssue maps one raw issue record to an Item. Required fields must be
// present with the right type; optional fields fall back to safe defaults.
func parseIssue(raw any, sourceRepo string) (adapters.Item, error) {
	issue, ok := raw.(map[string]any)
	if !ok {
		return adapters.Item{}, issueError("unknown", "issue record is not an object")
	}

	number, ok := issueNumber(issue)
	if !ok {
		return adapters.Item{}, issueError("unknown", "missing or invalid number")
	}
	label := fmt.Sprintf("%d", number)

	title, ok := adapters.LookupString(issue, "title")
	if !ok {
		return adapters.Item{}, issueError(label, "missing or invalid title")
	}
	state, ok := adapters.LookupString(issue, "state")
	if !ok {
		return adapters.Item{}, issueError(label, "missing or invalid state")
	}
	url, ok := adapters.LookupString(issue, "html_url")
	if !ok {
		return adapters.Item{}, issueError(label, "missing or invalid html_url")
	}
	created, ok := adapters.LookupString(issue, "created_at")
	if !ok {
		return adapters.Item{}, issueError(label, "missing or invalid created_at")
	}
	updated, ok := adapters.LookupString(issue, "updated_at")
	if !ok {
		return adapters.Item{}, issueError(label, "missing or invalid updated_at")
	}

	return adapters.Item{
		ID:    fmt.Sprintf("%s:%s#%d", systemPrefix, sourceRepo, number),
		Title: title,
		State: state,
		Tags:  adapters.LookupStrings(issue, "labels"),
		URL:   url,
		Timestamps: adapters.ItemTimestamps{
			Created: created,
			Updated: updated,
		},
		Body: adapters.LookupStringPtr(issue, "body"),
	}, nil
}

// issueNumber reads the numeric issue identifier. JSON decoding yields
// float64; reject fractional values.
func issueNumber(issue map[string]any) (int64, bool) {
	value, ok := issue["number"]
	if !ok {
		return 0, false
	}
	switch n := value.(type) {
	case float64:
		if n != float64(int64(n)) {
			return 0, false
		}
		return int64(n), true
	case int:
		return int64(n), true
	case int64:
		return n, true
	default:
		return 0, false
	}
}

func issueError(number, reason string) error {
	return errors.NewAdapterError(Name,
		fmt.Sprintf("failed to parse issue %s: %s", number, reason), nil)
}
