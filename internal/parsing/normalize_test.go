package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Lowercases text", "Senior Engineer", "senior engineer"},
		{"Keeps c++ intact", "Expert in C++", "expert in c++"},
		{"Keeps c# intact", "C# and .NET", "c# and .net"},
		{"Keeps node.js intact", "Node.js developer", "node.js developer"},
		{"Punctuation becomes space", "python,java;go", "python java go"},
		{"Collapses whitespace", "a   b\t\nc", "a b c"},
		{"Trims edges", "  hello  ", "hello"},
		{"Dashes become spaces", "2018-2020", "2018 2020"},
		{"Parentheses become spaces", "(remote)", "remote"},
		{"Unicode becomes space", "café résumé", "caf r sum"},
		{"Empty string", "", ""},
		{"Only punctuation", "!!!", ""},
		{"Digits preserved", "AWS EC2", "aws ec2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Normalize(tt.input)
			assert.Equal(t, tt.expected, result, "should normalize text correctly")
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Senior C++ Engineer (Node.js, C#)",
		"plain text already",
		"  spaced   out  ",
	}
	for _, input := range inputs {
		once := Normalize(input)
		assert.Equal(t, once, Normalize(once), "normalizing twice should equal normalizing once")
	}
}

func TestHasTerm(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		term     string
		expected bool
	}{
		{"Exact single word", "go python java", "python", true},
		{"First word", "go python java", "go", true},
		{"Last word", "go python java", "java", true},
		{"Whole phrase", "machine learning engineer", "machine learning", true},
		{"No partial-word match", "javascript developer", "java", false},
		{"No partial-word match suffix", "typescript", "script", false},
		{"Term with dot", "node.js and react", "node.js", true},
		{"Term with plus", "c++ developer", "c++", true},
		{"Missing term", "go python", "rust", false},
		{"Empty text", "", "go", false},
		{"Empty term", "go python", "", false},
		{"Phrase not contiguous", "machine deep learning", "machine learning", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := HasTerm(tt.text, tt.term)
			assert.Equal(t, tt.expected, result, "should match bounded phrases only")
		})
	}
}
