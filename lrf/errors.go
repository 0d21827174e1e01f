package lrf

import "fmt"

// InvalidConfigurationError wraps every field violation found while
// validating a Config.
type InvalidConfigurationError struct {
	Err error
}

func (e *InvalidConfigurationError) Error() string {
	return "invalid lrf configuration: " + e.Err.Error()
}

func (e *InvalidConfigurationError) Unwrap() error {
	return e.Err
}

// UnsupportedOutputFormatError is returned for an unrecognized scan result
// format request.
type UnsupportedOutputFormatError struct {
	Format OutputFormat
}

func (e *UnsupportedOutputFormatError) Error() string {
	return fmt.Sprintf("unsupported scan output format %d", e.Format)
}

// ScanTargetCapabilityError is returned when a scan target does not
// implement the Scannable capability.
type ScanTargetCapabilityError struct {
	Target interface{}
}

func (e *ScanTargetCapabilityError) Error() string {
	return fmt.Sprintf("expected implementation of Scannable but got %T", e.Target)
}
