package worker

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"normativa/internal/model"
	"normativa/internal/pipeline"
)

// Generator produces one document from one input record
type Generator interface {
	Generate(ctx context.Context, d model.ReglamentoData) (*pipeline.GenerateResult, error)
}

// GenerateJob is one record of a batch run
type GenerateJob struct {
	Index     int
	Data      model.ReglamentoData
	Generator Generator
}

// Execute runs the generation for this record
func (j *GenerateJob) Execute(ctx context.Context) Result {
	result, err := j.Generator.Generate(ctx, j.Data)
	return &GenerateOutcome{
		Index:       j.Index,
		Data:        j.Data,
		RazonSocial: j.Data.RazonSocial,
		Result:      result,
		Error:       err,
	}
}

// GenerateOutcome is the per-record result of a batch run. Index is
// the record's position in the input file, so callers can re-sort the
// pool's arrival-ordered results.
type GenerateOutcome struct {
	Index       int
	Data        model.ReglamentoData
	RazonSocial string
	Result      *pipeline.GenerateResult
	Error       error
}

// GetError returns the generation error, if any
func (o *GenerateOutcome) GetError() error { return o.Error }

// BatchProcessor runs many records through a generator concurrently
type BatchProcessor struct {
	generator   Generator
	concurrency int
}

// NewBatchProcessor creates a batch processor
func NewBatchProcessor(generator Generator, concurrency int) *BatchProcessor {
	return &BatchProcessor{generator: generator, concurrency: concurrency}
}

// Process runs all records and returns the outcomes in input order
func (b *BatchProcessor) Process(ctx context.Context, records []model.ReglamentoData) []*GenerateOutcome {
	if len(records) == 0 {
		return []*GenerateOutcome{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	// Submit from a separate goroutine so Wait can drain results while
	// the batch is still being queued
	go func() {
		for i, rec := range records {
			pool.Submit(&GenerateJob{Index: i, Data: rec, Generator: b.generator})
		}
		pool.Close()
	}()

	results := pool.Wait()

	outcomes := make([]*GenerateOutcome, len(results))
	for _, result := range results {
		o := result.(*GenerateOutcome)
		outcomes[o.Index] = o
	}
	return outcomes
}

// ProcessFile reads input records from a YAML or JSON file and runs
// them through the generator
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*GenerateOutcome, error) {
	records, err := ReadRecordsFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}
	return b.Process(ctx, records), nil
}

// ReadRecordsFromFile loads a list of input records. YAML and JSON
// both decode through the YAML reader.
func ReadRecordsFromFile(filePath string) ([]model.ReglamentoData, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}

	var records []model.ReglamentoData
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	return records, nil
}
