// Package prompts embeds the built-in interview question bank.
package prompts

import _ "embed"

// DefaultQuestionBank is the YAML source of the bank used when no bank file
// is configured.
//
//go:embed questions/default.yaml
var DefaultQuestionBank []byte
