package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-nd/nd/core"
)

var (
	errNoDims       = errors.New("ndfilter: input needs at least one dimension")
	errNoStages     = errors.New("ndfilter: pipeline has no stages")
	errUnknownInput = errors.New("ndfilter: unknown input kind")
	errUnknownStage = errors.New("ndfilter: unknown stage")
)

// Pipeline is the YAML description consumed by "ndfilter run".
type Pipeline struct {
	Input  InputSpec   `yaml:"input"`
	Stages []StageSpec `yaml:"stages"`
}

// InputSpec describes the synthetic input image.
type InputSpec struct {
	Kind string  `yaml:"kind"`
	Dims []int64 `yaml:"dims"`
	Seed int64   `yaml:"seed"`
	Low  float64 `yaml:"low"`
	High float64 `yaml:"high"`
	// Value fills constant inputs and sets the height of an impulse.
	Value float64 `yaml:"value"`
	// Cell is the checker square size.
	Cell     int64   `yaml:"cell"`
	Position []int64 `yaml:"position"`
}

// StageSpec describes one operator. Fields an operator does not use are
// ignored.
type StageSpec struct {
	Name   string    `yaml:"name"`
	Op     string    `yaml:"op"`
	Shape  string    `yaml:"shape"`
	Size   []int64   `yaml:"size"`
	Radius int64     `yaml:"radius"`
	Rank   *int      `yaml:"rank"`
	Sigma  []float64 `yaml:"sigma"`
	Kernel string    `yaml:"kernel"`
	Method string    `yaml:"method"`
	OOB    string    `yaml:"oob"`
	// Value is the constant used by oob: constant.
	Value float64 `yaml:"value"`
}

// Label names the stage in logs and the report.
func (s StageSpec) Label() string {
	if s.Name != "" {
		return s.Name
	}
	return s.Op
}

// Report holds the statistics printed for one pipeline step.
type Report struct {
	Stage    string
	Min      float64
	Max      float64
	Mean     float64
	Duration time.Duration
}

func decodePipeline(r io.Reader) (*Pipeline, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var p Pipeline
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("ndfilter: decode pipeline: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks the input and stage names without building anything.
func (p *Pipeline) Validate() error {
	if len(p.Input.Dims) == 0 {
		return errNoDims
	}
	if _, ok := inputGenerators[p.Input.Kind]; !ok {
		return fmt.Errorf("%w: %q", errUnknownInput, p.Input.Kind)
	}
	if len(p.Stages) == 0 {
		return errNoStages
	}
	for i, s := range p.Stages {
		if _, ok := lookupStage(s.Op); !ok {
			return fmt.Errorf("%w: stage %d: %q", errUnknownStage, i, s.Op)
		}
	}
	return nil
}

// Run builds the input and feeds it through every stage. It returns one
// report for the input and one per completed stage; on failure the reports
// gathered so far are returned with the error.
func (p *Pipeline) Run(logger *slog.Logger) ([]Report, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	cur, err := makeInput(p.Input)
	if err != nil {
		return nil, err
	}
	reports := []Report{summarize("input:"+p.Input.Kind, cur, time.Since(start))}

	for i, s := range p.Stages {
		entry, _ := lookupStage(s.Op)
		opts := []core.OperatorOption{core.WithName(s.Label()), core.WithLogger(logger)}

		start = time.Now()
		out, err := entry.run(cur, s, opts)
		elapsed := time.Since(start)
		if err != nil {
			logger.Warn("ndfilter: stage failed", "stage", s.Label(), "index", i, "err", err)
			return reports, fmt.Errorf("ndfilter: stage %d (%s): %w", i, s.Label(), err)
		}
		logger.Debug("ndfilter: stage done", "stage", s.Label(), "op", s.Op, "elapsed", elapsed)

		cur = out
		reports = append(reports, summarize(s.Label(), cur, elapsed))
	}
	return reports, nil
}

func lookupStage(op string) (stageEntry, bool) {
	return lo.Find(stageRegistry, func(e stageEntry) bool { return e.name == op })
}
