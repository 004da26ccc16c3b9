package kfmt

import (
	"bytes"
	"errors"
	"testing"

	"gopercpu/kernel"
	"gopercpu/kernel/cpu"
)

const (
	bannerStart = "\n=== per-CPU bring-up aborted ===\n"
	bannerEnd   = "=== halting CPU ===\n"
)

func TestDescribe(t *testing.T) {
	var nilErr *kernel.Error

	specs := []struct {
		cause     interface{}
		expModule string
		expMsg    string
	}{
		{&kernel.Error{Module: "percpu", Message: "arena unavailable"}, "percpu", "arena unavailable"},
		{errors.New("mmap failed"), runtimeModule, "mmap failed"},
		{"bad stride", runtimeModule, "bad stride"},
		{nilErr, "", ""},
		{nil, "", ""},
		{42, "", ""},
	}

	for specIndex, spec := range specs {
		module, msg := describe(spec.cause)
		if module != spec.expModule || msg != spec.expMsg {
			t.Errorf("[spec %d] expected (%q, %q); got (%q, %q)", specIndex, spec.expModule, spec.expMsg, module, msg)
		}
	}
}

func TestPanic(t *testing.T) {
	defer func() {
		cpuHaltFn = cpu.Halt
		SetOutputSink(nil)
	}()

	var haltCount int
	cpuHaltFn = func() {
		haltCount++
	}

	specs := []struct {
		name string
		err  interface{}
		exp  string
	}{
		{
			"with *kernel.Error",
			&kernel.Error{Module: "percpu", Message: "CPU index outside the initialized per-CPU areas"},
			bannerStart + "[percpu] CPU index outside the initialized per-CPU areas\n" + bannerEnd,
		},
		{
			"with error",
			errors.New("go error"),
			bannerStart + "[rt] go error\n" + bannerEnd,
		},
		{
			"with string",
			"string error",
			bannerStart + "[rt] string error\n" + bannerEnd,
		},
		{
			"without error",
			nil,
			bannerStart + bannerEnd,
		},
	}

	for _, spec := range specs {
		t.Run(spec.name, func(t *testing.T) {
			var buf bytes.Buffer
			SetOutputSink(&buf)
			haltCount = 0

			Panic(spec.err)

			if got := buf.String(); got != spec.exp {
				t.Fatalf("expected to get:\n%q\ngot:\n%q", spec.exp, got)
			}

			if haltCount != 1 {
				t.Fatalf("expected Panic to halt the CPU once; halted %d times", haltCount)
			}
		})
	}
}
