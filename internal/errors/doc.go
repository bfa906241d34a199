// Package errors provides a comprehensive error handling solution for the skillsheet project.
//
// This package is inspired by the goaterr pattern and provides:
//   - Structured errors with codes, messages, and metadata
//   - User-friendly error messages
//   - Error context preservation through wrapping
//   - Validation error helpers
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("hero tree not found")
//	err := errors.InvalidArgumentf("invalid worker count: %d", workers)
//
// Adding metadata:
//
//	err := errors.NotFound("hero tree not found").
//	    WithMeta("hero_id", heroID)
//
// Wrapping errors:
//
//	if err := repo.LoadSet(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load hero trees")
//	}
//
// Changing error semantics:
//
//	if err := os.ReadFile(path); err != nil {
//	    if os.IsNotExist(err) {
//	        return errors.WrapWithCode(err, errors.CodeNotFound, "catalog file missing")
//	    }
//	    return errors.Wrap(err, "catalog read error")
//	}
//
// # Error Checking
//
// Type checking:
//
//	if errors.IsNotFound(err) {
//	    // Handle not found case
//	}
//
// Extracting information:
//
//	code := errors.GetCode(err)
//	message := errors.GetMessage(err)
//	meta := errors.GetMeta(err)
//
// # Validation Errors
//
// Using the validation builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("output_dir", cfg.OutputDir, vb)
//	errors.ValidateRange("workers", cfg.Workers, 1, 64, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer-Specific Guidelines
//
// Loader layer:
//   - Return NotFound for missing required input files
//   - Include file paths in metadata
//   - Wrap decode errors with context
//
// Repository layer:
//   - Return domain-specific errors (NotFound for absent trees)
//   - Include hero ids in metadata
//   - Wrap store errors with context
//
// Orchestrator layer:
//   - Validate inputs and return InvalidArgument errors
//   - Check preconditions and return FailedPrecondition errors
//   - Wrap loader and repository errors with pipeline context
//
// Command layer:
//   - Extract user-friendly messages for the terminal
//   - Log internal errors for debugging and exit non-zero
//
// # Error Codes
//
// The following error codes are available:
//   - NotFound: Resource not found
//   - InvalidArgument: Invalid input provided
//   - AlreadyExists: Resource already exists
//   - PermissionDenied: Insufficient permissions
//   - Internal: Internal server error
//   - Unavailable: Service temporarily unavailable
//   - Unauthenticated: Authentication required
//   - ResourceExhausted: Rate limit or quota exceeded
//   - FailedPrecondition: Operation requirements not met
//   - Aborted: Operation aborted
//   - OutOfRange: Value out of valid range
//   - Unimplemented: Feature not implemented
//   - DataLoss: Unrecoverable data loss
//   - Canceled: Operation canceled
//   - DeadlineExceeded: Operation timeout
package errors
