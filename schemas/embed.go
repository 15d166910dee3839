// Package schemas embeds the JSON Schema documents for word-list files.
package schemas

import _ "embed"

// WordList validates input files for the batch and import commands.
//
//go:embed word_list.schema.json
var WordList string

// SegmentResults validates the output of the batch command.
//
//go:embed segment_results.schema.json
var SegmentResults string
