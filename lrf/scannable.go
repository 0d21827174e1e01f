package lrf

// Scannable is the capability a scene object must offer to be scanned.
//
// Implementations scan each of their surfaces with the sensor and fuse the
// sparse per-surface results into one dense scan: start from NewEmptyScan,
// Merge each surface's RaySamples under its ordinal in declaration order.
// When two surfaces claim the same ray the one merged later wins; callers
// needing depth-correct occlusion must order surfaces back to front.
type Scannable interface {
	GetScanBy(sensor *Sensor) (*Scan, error)
}
