// parse.go - Strict parsing of model output
//
// Model output is only ever unmarshalled or regex-split here; it is never
// interpreted as anything executable.

package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// CleanJSON strips a surrounding markdown code fence from a model response,
// since models wrap JSON in ```json blocks even when told not to.
func CleanJSON(input string) string {
	clean := strings.TrimSpace(input)

	// Remove opening ```json or ``` with optional newline
	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")

	// Remove closing ``` unconditionally
	clean = strings.TrimSuffix(clean, "```")

	return strings.TrimSpace(clean)
}

// ParseFields decodes a JSON array of career field names.
func ParseFields(raw string) ([]string, error) {
	var fields []string
	if err := json.Unmarshal([]byte(CleanJSON(raw)), &fields); err != nil {
		return nil, fmt.Errorf("model did not return a JSON list of fields: %w", err)
	}
	if len(fields) == 0 {
		return nil, errors.New("model returned no career fields")
	}
	return fields, nil
}

// RoadmapPhase is one expandable section of a generated roadmap.
type RoadmapPhase struct {
	Title   string `json:"title"`
	Details string `json:"details"`
}

var phaseHeading = regexp.MustCompile(`(?m)^### +(.+)$`)

// ParseRoadmap splits roadmap markdown into its '### ' phase sections.
func ParseRoadmap(md string) ([]RoadmapPhase, error) {
	locs := phaseHeading.FindAllStringSubmatchIndex(md, -1)
	if len(locs) == 0 {
		return nil, errors.New("roadmap has no phase headings")
	}
	var phases []RoadmapPhase
	for i, loc := range locs {
		title := strings.TrimSpace(md[loc[2]:loc[3]])
		end := len(md)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		details := strings.TrimSpace(md[loc[1]:end])
		phases = append(phases, RoadmapPhase{Title: title, Details: details})
	}
	return phases, nil
}
