package controller

import "github.com/nguyentantai21042004/deepthink/internal/model"

type state int

const (
	stateChoosingInputMethod state = iota
	stateAcquiringInput
	stateChoosingModel
	stateProcessing
	stateDisplayingResults
	stateOptionalPersistence
	stateRating
	stateContinueDecision
	stateTerminated
)

func (s state) String() string {
	switch s {
	case stateChoosingInputMethod:
		return "ChoosingInputMethod"
	case stateAcquiringInput:
		return "AcquiringInput"
	case stateChoosingModel:
		return "ChoosingModel"
	case stateProcessing:
		return "Processing"
	case stateDisplayingResults:
		return "DisplayingResults"
	case stateOptionalPersistence:
		return "OptionalPersistence"
	case stateRating:
		return "Rating"
	case stateContinueDecision:
		return "ContinueDecision"
	case stateTerminated:
		return "Terminated"
	default:
		return "Unknown"
	}
}

type inputMethod int

const (
	inputText inputMethod = iota + 1
	inputURL
	inputFile
)

// parseInputMethod maps an input-menu answer to a method.
func parseInputMethod(choice string) (inputMethod, error) {
	switch choice {
	case "1":
		return inputText, nil
	case "2":
		return inputURL, nil
	case "3":
		return inputFile, nil
	default:
		return 0, &model.InvalidChoiceError{Value: choice}
	}
}

// turn is what one pass through the loop carries between states.
type turn struct {
	method  inputMethod
	session *model.Session
}
