// Package app wires the dashboard components together and manages their
// lifecycle.
//
// # Initialization Flow
//
//	1. Load configuration from defaults, file and environment
//	2. Initialize logging and OpenTelemetry
//	3. Create the loader, the pipeline and the services
//	4. Compute the views once from the input files
//	5. Export the views in the configured formats
//	6. Optionally serve them over HTTP until the context is cancelled
//
// # Usage
//
//	application, err := app.NewApplication(cfg, logger)
//	if err != nil {
//	    return err
//	}
//	result, err := application.Compute(ctx)
//	if err != nil {
//	    return err
//	}
//	paths, err := application.Export(ctx, result.Views)
//	...
//	err = application.Serve(ctx)
package app
