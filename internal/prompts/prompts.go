// Package prompts provides the fixed instruction text for each analysis
// stage that invokes the generative-text capability.
package prompts

import (
	"errors"
	"slices"
)

// Stage identifies an analysis stage with its own instructions.
type Stage string

// Valid analysis stages.
const (
	StageNormalize Stage = "normalize"
	StageRevise    Stage = "revise"
)

// ErrInvalidStage indicates an unrecognized stage value.
var ErrInvalidStage = errors.New("invalid stage")

var stages = []Stage{
	StageNormalize,
	StageRevise,
}

// Stages returns the list of valid analysis stages.
func Stages() []Stage {
	return stages
}

// ParseStage validates a string as a known analysis stage.
// Returns ErrInvalidStage if the value is not recognized.
func ParseStage(s string) (Stage, error) {
	v := Stage(s)
	if !slices.Contains(stages, v) {
		return "", ErrInvalidStage
	}
	return v, nil
}

const normalizeInstructions = `You are a helpful assistant that groups lines of text into paragraphs and cleans up line breaks to restore proper paragraph structure.

Group the following lines into paragraphs. Each line is separated by a newline character. Output the paragraphs separated by a blank line without line numbers or bullet points, preserving the original words.`

const reviseInstructions = `You are a helpful assistant that revises text based on the user's instructions. Respond with the revised paragraph only, without commentary.`

var instructions = map[Stage]string{
	StageNormalize: normalizeInstructions,
	StageRevise:    reviseInstructions,
}

// Instructions returns the fixed instructions for an analysis stage.
// Returns ErrInvalidStage if the stage is not recognized.
func Instructions(stage Stage) (string, error) {
	text, ok := instructions[stage]
	if !ok {
		return "", ErrInvalidStage
	}
	return text, nil
}
