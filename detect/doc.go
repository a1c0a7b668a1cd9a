// Package detect binds the external table detection engine.
//
// Detection itself is not implemented here: the [Engine] interface wraps
// a third-party detector and adapts its output into the shared
// [github.com/tsawler/tablecloth/model.RawTable] form, tagging every
// bounding box with the engine's bottom-left coordinate convention.
// [TabulaEngine] is the tabula-backed implementation; [Config] filters
// out detections below minimum size or confidence.
package detect
