// Package server shells out to the vendor license-server query tools and
// turns their output into reconciliation report items.
package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"time"

	"github.com/hpc-toolchain/license-manager/pkg/agent/parsing"
	"github.com/hpc-toolchain/license-manager/pkg/models"
)

// ToolTimeout bounds one vendor tool invocation.
const ToolTimeout = 6 * time.Second

var (
	// ErrNoServerAvailable is returned when every configured license
	// server yielded empty output or a failed invocation.
	ErrNoServerAvailable = errors.New("no license server available")

	// ErrBadServerOutput is returned when a server answered but the
	// parser could not find the requested feature's counts.
	ErrBadServerOutput = errors.New("bad license server output")
)

// Configuration types, matching the ledger's configuration enum.
const (
	TypeFlexLM   = "flexlm"
	TypeRLM      = "rlm"
	TypeLSDyna   = "lsdyna"
	TypeLMX      = "lmx"
	TypeOLicense = "olicense"
)

// ToolPaths locates the vendor query tools.
type ToolPaths struct {
	Lmutil     string
	Lsdyna     string
	Rlmutil    string
	Lmxendutil string
	Olixtool   string
}

// Runner executes one tool invocation and returns its stdout. Swapped out
// in tests.
type Runner func(ctx context.Context, argv []string) ([]byte, error)

// Adapter queries one configuration's license servers.
type Adapter struct {
	typ     string
	servers []models.LicenseServer
	paths   ToolPaths
	run     Runner
}

// New creates the adapter for a configuration type.
func New(configType string, servers []models.LicenseServer, paths ToolPaths) (*Adapter, error) {
	switch configType {
	case TypeFlexLM, TypeRLM, TypeLSDyna, TypeLMX, TypeOLicense:
	default:
		return nil, fmt.Errorf("unknown license server type %q", configType)
	}
	if len(servers) == 0 {
		return nil, fmt.Errorf("no license servers configured for %s", configType)
	}
	return &Adapter{typ: configType, servers: servers, paths: paths, run: runCommand}, nil
}

// SetRunner replaces the subprocess runner, used by tests.
func (a *Adapter) SetRunner(run Runner) {
	a.run = run
}

// Commands returns one tool argv per configured license server. feature is
// only embedded where the tool queries a single feature.
func (a *Adapter) Commands(feature string) [][]string {
	commands := make([][]string, 0, len(a.servers))
	for _, srv := range a.servers {
		addr := fmt.Sprintf("%d@%s", srv.Port, srv.Host)
		switch a.typ {
		case TypeFlexLM:
			commands = append(commands, []string{a.paths.Lmutil, "lmstat", "-c", addr, "-f", feature})
		case TypeLSDyna:
			commands = append(commands, []string{a.paths.Lsdyna, "-s", addr, "-R"})
		case TypeRLM:
			commands = append(commands, []string{a.paths.Rlmutil, "rlmstat", "-c", addr, "-a", "-p"})
		case TypeLMX:
			commands = append(commands, []string{a.paths.Lmxendutil, "-licstat", "-host", srv.Host, "-port", fmt.Sprint(srv.Port)})
		case TypeOLicense:
			commands = append(commands, []string{a.paths.Olixtool, "-sv", fmt.Sprintf("%s:%d", srv.Host, srv.Port), "-gw"})
		}
	}
	return commands
}

// RawOutput runs the query against each server in order and returns the
// first non-empty stdout.
func (a *Adapter) RawOutput(ctx context.Context, feature string) ([]byte, error) {
	for _, argv := range a.Commands(feature) {
		output, err := a.run(ctx, argv)
		if err != nil {
			slog.Debug("License server query failed, trying next",
				"type", a.typ, "argv", argv, "error", err)
			continue
		}
		if len(bytes.TrimSpace(output)) == 0 {
			continue
		}
		return output, nil
	}
	return nil, fmt.Errorf("%w: type %s", ErrNoServerAvailable, a.typ)
}

// ReportItem queries the servers for productFeature and parses the counts.
func (a *Adapter) ReportItem(ctx context.Context, productFeature string) (models.ReportItem, error) {
	_, feature, err := models.ParseProductFeature(productFeature)
	if err != nil {
		return models.ReportItem{}, err
	}

	output, err := a.RawOutput(ctx, feature)
	if err != nil {
		return models.ReportItem{}, err
	}

	var counts parsing.Counts
	switch a.typ {
	case TypeFlexLM:
		counts, err = parsing.ParseFlexLM(output, feature)
		if err != nil {
			return models.ReportItem{}, fmt.Errorf("%w: %v", ErrBadServerOutput, err)
		}
	case TypeLSDyna:
		counts, err = featureCounts(parsing.ParseLSDyna(output), feature)
	case TypeRLM:
		counts, err = featureCounts(parsing.ParseRLM(output), feature)
	case TypeLMX:
		counts, err = featureCounts(parsing.ParseLMX(output), feature)
	case TypeOLicense:
		counts, err = featureCounts(parsing.ParseOLicense(output), feature)
	}
	if err != nil {
		return models.ReportItem{}, err
	}

	return models.ReportItem{
		ProductFeature: productFeature,
		Used:           counts.Used,
		Total:          counts.Total,
	}, nil
}

func featureCounts(parsed map[string]parsing.Counts, feature string) (parsing.Counts, error) {
	counts, ok := parsed[feature]
	if !ok {
		return parsing.Counts{}, fmt.Errorf("%w: feature %s not reported", ErrBadServerOutput, feature)
	}
	return counts, nil
}

// runCommand executes argv with the tool timeout and returns its stdout.
func runCommand(ctx context.Context, argv []string) ([]byte, error) {
	cmdCtx, cancel := context.WithTimeout(ctx, ToolTimeout)
	defer cancel()

	cmd := exec.CommandContext(cmdCtx, argv[0], argv[1:]...)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return nil, err
	}
	return stdout.Bytes(), nil
}
