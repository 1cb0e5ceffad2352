// Package controller runs the interactive summarization session.
package controller

import "context"

// Controller drives the prompt loop until the user stops, input runs out, or
// ctx is cancelled.
type Controller interface {
	Run(ctx context.Context) error
}
