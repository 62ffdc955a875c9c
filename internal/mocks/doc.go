// Package mocks provides hand-written test doubles shared across packages.
//
// Each mock exposes function fields that override its behaviour, default
// return values used when no function is set, and mutex-protected call
// tracking:
//
//	gen := &mocks.MockGenerator{
//	    GenerateFn: func(ctx context.Context, prompt string) (interface{}, error) {
//	        return "```json\n{}\n```", nil
//	    },
//	}
//	// ... exercise the code under test ...
//	assert.Equal(t, 1, gen.CallCount())
package mocks
