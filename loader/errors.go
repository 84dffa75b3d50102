package loader

import "errors"

// ErrTruncatedStream is returned when the input ends before a declared
// record count has been fully read.
var ErrTruncatedStream = errors.New("loader: truncated graph stream")

// ErrTooManyVertexTypes is returned when the stream declares more than
// 65536 vertex types (spec §6/§7).
var ErrTooManyVertexTypes = errors.New("loader: nvertex_types exceeds 65536")

// ErrTooManyEdgeTypes is returned when the stream declares more than 7 edge
// types (spec §3/§6/§7).
var ErrTooManyEdgeTypes = errors.New("loader: nedge_types exceeds 7")

// ErrTrailingData is returned when bytes remain after the last edge-type
// record; spec §6 requires end-of-stream to land exactly there.
var ErrTrailingData = errors.New("loader: trailing data after edge-type table")
