package resize

import (
	"context"
)

// Runner represents objects that can receive a stream of input datasets,
// manipulate them in some way (resizing, routing, sinking, etc.) and produce a
// new stream of the formatted values.
// NOTE: Some Runners will run concurrently, this it's important to not modify
// the input in-place. Instead, copy/create a new dataset and use that
type Runner interface {
	// Run the manipulation code. Receive datasets from the `inp` stream, cast
	// and modify them as needed (no in-place), and send the results to the
	// `out` stream. Return when the `inp` is closed.
	//
	// NOTE: This function will run concurrently with other runners, so it needs
	// to be thread-safe. Closing the provided `inp` and `out` channels is
	// unnecessary as it's handled by the code that triggered this Run()
	// function.
	//
	// NOTE: By convention, empty Datasets should never be sent to `out`
	// stream.
	Run(ctx context.Context, inp, out chan Dataset) error

	// Returns the constant list of data types that are produced by this Runner.
	// Use the Wildcard type when the returned types depend on the input types
	Returns() []Type
}

// Run runs given runner and takes care of channels management involved in runner execution
// safe to use only if caller created the out channel
func Run(ctx context.Context, r Runner, inp, out chan Dataset, cancel context.CancelFunc, err *error) {
	// drain inp in case there are left overs in the channel.
	// usually this will be a no-op, unless runner has exited early due to an
	// error or some other logic. in such cases draining allows preceding runner
	// to be canceled
	defer drain(inp)
	defer close(out)
	*err = r.Run(ctx, inp, out)
	if *err != nil && cancel != nil {
		cancel()
	}
}

// PassThrough returns a runner that lets all of its input through as-is
func PassThrough() Runner {
	return passThroughSingleton
}

var passThroughSingleton = &passThrough{}

type passThrough struct{}

func (*passThrough) Returns() []Type { return []Type{Wildcard} }
func (*passThrough) Run(ctx context.Context, inp, out chan Dataset) error {
	for data := range inp {
		select {
		case out <- data:
		case <-ctx.Done():
			return nil
		}
	}
	return nil
}

// helper function to drain inp/out channel
func drain(c chan Dataset) {
	for range c {
	}
}
