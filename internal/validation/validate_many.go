package validation

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-headerval/internal/chainstorage"
	"github.com/goodnatureofminers/blockinsight7000-headerval/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-headerval/pkg/workerpool"
)

// Candidate is a header together with the chain state it claims to extend.
type Candidate struct {
	Header       *model.BlockHeader
	Previous     *model.BlockHeader
	PreviousData *chainstorage.BlockHeaderAccumulatedData
}

// Result is the verdict on one Candidate. Exactly one of Builder and Err is set.
type Result struct {
	Candidate Candidate
	Builder   *chainstorage.BlockHeaderAccumulatedDataBuilder
	Err       error
}

// ValidateMany validates independent candidates on up to workers goroutines.
// Results are returned in candidate order. A non-nil error means ctx was
// canceled before every candidate was validated.
func (v *HeaderValidator) ValidateMany(ctx context.Context, candidates []Candidate, workers int) ([]Result, error) {
	results := make([]Result, len(candidates))
	err := workerpool.Process(ctx, workers, candidates, func(ctx context.Context, i int, c Candidate) error {
		builder, verr := v.Validate(ctx, c.Header, c.Previous, c.PreviousData)
		results[i] = Result{Candidate: c, Builder: builder, Err: verr}
		return nil
	}, nil)
	if err != nil {
		return nil, err
	}
	return results, nil
}
