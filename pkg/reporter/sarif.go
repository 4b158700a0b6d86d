package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/gospell/pkg/runner"
)

// SARIF version used by this reporter.
const sarifVersion = "2.1.0"

// SARIF schema URI.
const sarifSchemaURI = "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json"

// sarifRuleID is the single rule every finding reports under.
const sarifRuleID = "unknown-word"

// SARIFOutput represents the root SARIF document.
type SARIFOutput struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []SARIFRun `json:"runs"`
}

// SARIFRun represents a single analysis run.
type SARIFRun struct {
	Tool    SARIFTool     `json:"tool"`
	Results []SARIFResult `json:"results"`
}

// SARIFTool describes the analysis tool.
type SARIFTool struct {
	Driver SARIFDriver `json:"driver"`
}

// SARIFDriver contains tool metadata and rules.
type SARIFDriver struct {
	Name           string      `json:"name"`
	InformationURI string      `json:"informationUri"`
	Rules          []SARIFRule `json:"rules"`
}

// SARIFRule describes a reported check.
type SARIFRule struct {
	ID               string               `json:"id"`
	ShortDescription SARIFMultiformatText `json:"shortDescription,omitempty"`
}

// SARIFMultiformatText contains text in multiple formats.
type SARIFMultiformatText struct {
	Text string `json:"text"`
}

// SARIFResult represents a single finding.
type SARIFResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level"`
	Message   SARIFMessage    `json:"message"`
	Locations []SARIFLocation `json:"locations"`
}

// SARIFMessage contains the result message.
type SARIFMessage struct {
	Text string `json:"text"`
}

// SARIFLocation describes a code location.
type SARIFLocation struct {
	PhysicalLocation SARIFPhysicalLocation `json:"physicalLocation"`
}

// SARIFPhysicalLocation contains file path and region.
type SARIFPhysicalLocation struct {
	ArtifactLocation SARIFArtifactLocation `json:"artifactLocation"`
	Region           SARIFRegion           `json:"region"`
}

// SARIFArtifactLocation contains the file URI.
type SARIFArtifactLocation struct {
	URI string `json:"uri"`
}

// SARIFRegion describes the affected text region.
type SARIFRegion struct {
	StartLine   int `json:"startLine"`
	StartColumn int `json:"startColumn,omitempty"`
	ByteOffset  int `json:"charOffset,omitempty"`
	ByteLength  int `json:"charLength,omitempty"`
}

// SARIFReporter formats results as SARIF 2.1.0 for code-scanning tools.
type SARIFReporter struct {
	opts    Options
	suggest func(string) []string
	bw      *bufio.Writer
}

// NewSARIFReporter creates a new SARIF reporter.
func NewSARIFReporter(opts Options) *SARIFReporter {
	return &SARIFReporter{
		opts:    opts,
		suggest: suggestFunc(opts),
		bw:      bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *SARIFReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode SARIF: %w", err)
	}

	return len(output.Runs[0].Results), nil
}

func (r *SARIFReporter) buildOutput(result *runner.Result) *SARIFOutput {
	run := SARIFRun{
		Tool: SARIFTool{
			Driver: SARIFDriver{
				Name:           "gospell",
				InformationURI: "https://github.com/yaklabco/gospell",
				Rules: []SARIFRule{
					{
						ID:               sarifRuleID,
						ShortDescription: SARIFMultiformatText{Text: "Word not found in any active dictionary"},
					},
				},
			},
		},
		Results: make([]SARIFResult, 0),
	}

	if result != nil {
		for _, file := range result.Files {
			uri := displayPath(file.Path, r.opts.WorkingDir)
			for _, finding := range file.Findings {
				message := fmt.Sprintf("Unknown word %q", finding.Word)
				if suggestions := r.suggest(finding.Word); len(suggestions) > 0 {
					message = fmt.Sprintf("%s; did you mean %q?", message, suggestions[0])
				}

				run.Results = append(run.Results, SARIFResult{
					RuleID:  sarifRuleID,
					Level:   "warning",
					Message: SARIFMessage{Text: message},
					Locations: []SARIFLocation{{
						PhysicalLocation: SARIFPhysicalLocation{
							ArtifactLocation: SARIFArtifactLocation{URI: uri},
							Region: SARIFRegion{
								StartLine:   finding.Line,
								StartColumn: finding.Column,
								ByteOffset:  finding.Range.StartByte,
								ByteLength:  finding.Range.Len(),
							},
						},
					}},
				})
			}
		}
	}

	return &SARIFOutput{
		Schema:  sarifSchemaURI,
		Version: sarifVersion,
		Runs:    []SARIFRun{run},
	}
}
