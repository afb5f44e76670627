package sample

import _ "embed"

//go:embed artificial_intelligence.txt
var artificialIntelligence string

// Name is the display name of the built-in sample.
const Name = "Artificial Intelligence (sample)"

// Text returns the built-in sample article.
func Text() string { return artificialIntelligence }
