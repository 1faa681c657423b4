//go:build js && wasm

package main

import (
	"fmt"
	"syscall/js"

	"github.com/cwbudde/algo-lieflow/dsp/lieflow"
	"github.com/cwbudde/algo-lieflow/host"
)

var (
	registry *host.Registry
	funcs    []js.Func

	// scratch buffers reused across calls; the JS event loop serializes them
	left  = make([]float32, lieflow.BlockSize)
	right = make([]float32, lieflow.BlockSize)
)

func main() {
	mathRandom := js.Global().Get("Math").Get("random")
	registry = host.NewRegistry(lieflow.SourceFunc(func() float64 {
		return mathRandom.Invoke().Float()
	}))

	api := js.Global().Get("Object").New()

	// newHandle(sampleRate, mode?) where mode is "independent" or "coupled".
	api.Set("newHandle", export(func(args []js.Value) any {
		sr := 48000
		if len(args) > 0 {
			sr = args[0].Int()
		}
		mode := lieflow.Independent
		if len(args) > 1 && args[1].Type() == js.TypeString {
			m, err := lieflow.ParseStereoMode(args[1].String())
			if err != nil {
				panic(err)
			}
			mode = m
		}
		return int(registry.Create(sr, mode))
	}))

	// process(left, right, handle) fills two Float32Arrays of BlockSize.
	api.Set("process", export(func(args []js.Value) any {
		l, r, h := args[0], args[1], handleArg(args[2])
		if l.Length() != lieflow.BlockSize || r.Length() != lieflow.BlockSize {
			panic(fmt.Errorf("%w: got %d and %d", lieflow.ErrBlockLength, l.Length(), r.Length()))
		}
		registry.Process(h, left, right)
		copyToJS(l, left)
		copyToJS(r, right)
		return js.Null()
	}))

	// getSample(left, right, handle) renders a preview of any length.
	api.Set("getSample", export(func(args []js.Value) any {
		l, r, h := args[0], args[1], handleArg(args[2])
		pl := make([]float32, l.Length())
		pr := make([]float32, r.Length())
		registry.RenderPreview(h, pl, pr)
		copyToJS(l, pl)
		copyToJS(r, pr)
		return js.Null()
	}))

	api.Set("release", export(func(args []js.Value) any {
		registry.Release(handleArg(args[0]))
		return js.Null()
	}))

	api.Set("blockSize", lieflow.BlockSize)

	js.Global().Set("LieFlow", api)
	select {}
}

func handleArg(v js.Value) host.Handle {
	return host.Handle(v.Int())
}

func copyToJS(dst js.Value, src []float32) {
	for i := range src {
		dst.SetIndex(i, src[i])
	}
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}
