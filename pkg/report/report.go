// Package report builds and persists the JSON run report every
// backup invocation writes, and delivers it by mail as a separate
// step. Grounded on backup.py's mail_content construction.
package report

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xenbackup/xenbackup/pkg/backupresult"
)

// PoolSection is one pool's contribution to the report body.
type PoolSection struct {
	Errors []string `json:"errors"`
	VMs    []string `json:"vms"`
}

// Report is the on-disk artefact: a subject line plus a per-pool body.
type Report struct {
	Subject string                 `json:"subject"`
	Body    map[string]PoolSection `json:"body"`
}

// Build assembles a Report from the orchestrator's per-pool results.
func Build(subject string, results []backupresult.PoolResult) (*Report, bool) {
	r := &Report{Subject: subject, Body: map[string]PoolSection{}}
	hasErrors := false

	for _, pr := range results {
		section := PoolSection{Errors: []string{}, VMs: []string{}}
		if pr.Error != nil {
			hasErrors = true
			section.Errors = append(section.Errors, pr.Error.Error())
		}
		if len(pr.Failed) > 0 {
			hasErrors = true
			for _, f := range pr.Failed {
				section.VMs = append(section.VMs, f.String())
			}
		}
		r.Body[pr.PoolName] = section
	}
	return r, hasErrors
}

// Write serialises r as JSON to path, encoding/json being the only
// marshalling library anywhere in the corpus (no JSON library is
// wired by the teacher or the rest of the pack).
func Write(path string, r *Report) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("report: marshalling: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("report: writing %s: %w", path, err)
	}
	return nil
}

// Read is the inverse of Write, used by the `mail` subcommand to load
// a report a prior `backup` invocation produced.
func Read(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("report: reading %s: %w", path, err)
	}
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("report: unmarshalling %s: %w", path, err)
	}
	return &r, nil
}
