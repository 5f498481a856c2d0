// Package dataprocessing turns the raw input tables into the seven view
// tables of the mortality dashboard.
//
// # Architecture
//
// The package is organized as a linear pipeline over one immutable snapshot:
//
//  1. Parser: validates the raw tables and builds typed records (BuildSnapshot)
//  2. Key Normalizer: text folding, code padding and numeric coercion
//  3. Reference Resolver: code to name directories built from DIVIPOLA and CIE-10
//  4. Aggregator: one count per view dimension
//  5. Ranker: stable top-N selection and dense ranks
//  6. Assembler: left merges counts with names into view rows
//
// # Usage
//
//	snapshot, err := dataprocessing.BuildSnapshot(inputs)
//	if err != nil {
//	    return err
//	}
//	pipeline := dataprocessing.NewPipeline(logger, dataprocessing.DefaultPipelineConfig())
//	views, err := pipeline.Run(ctx, snapshot)
//
// # Data Flow
//
//	raw tables → Parser → Snapshot → year filter → Aggregator → Ranker → Assembler → Views
//
// # Error Handling
//
// Schema problems are fatal and surface as SCHEMA errors from BuildSnapshot.
// Values that cannot be coerced never fail a run; the affected record is
// left out of the one grouping that needed the value. Unresolved join keys
// keep the row with an empty name.
package dataprocessing
