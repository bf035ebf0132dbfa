package resize

import (
	"context"
	"sync"
)

// Pipeline returns a vertical composite pipeline runner that works as a
// pipeline: the output of any one runner is passed as input to the next
func Pipeline(runners ...Runner) Runner {
	if len(runners) == 0 {
		return PassThrough()
	} else if len(runners) == 1 {
		return runners[0]
	}
	return pipeline(runners)
}

type pipeline []Runner

// see Runner. Returns the types of the last runner
func (rs pipeline) Returns() []Type {
	return rs[len(rs)-1].Returns()
}

func (rs pipeline) Run(ctx context.Context, inp, out chan Dataset) error {
	var wg sync.WaitGroup

	// don't let go-routines leak, an erroneous runner may exit early
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var mu sync.Mutex
	var firstErr error
	setErr := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	head, last := rs[:len(rs)-1], rs[len(rs)-1]
	for _, r := range head {
		middle := make(chan Dataset)
		wg.Add(1)
		go func(r Runner, inp, out chan Dataset) {
			defer wg.Done()
			var err error
			Run(ctx, r, inp, out, cancel, &err)
			setErr(err)
		}(r, inp, middle)
		inp = middle
	}

	err := last.Run(ctx, inp, out)
	if err != nil {
		cancel()
	}
	// the last runner owns its input, let preceding runners exit
	drain(inp)
	setErr(err)

	wg.Wait()
	return firstErr
}
