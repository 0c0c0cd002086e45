package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunTranscript(t *testing.T) {
	// the full scenario, byte for byte. teardown diagnostics come last
	// and in reverse order of creation.
	var out bytes.Buffer
	run(&out)

	want := "Default Constructor Called\n" +
		"Name: Ali\tRollNo: 32\n" +
		"Name: Rayyan\tRollNo: 20\n" +
		"Destructor Called\n" +
		"Destructor Called\n" +
		"Destructor Called\n"
	assert.Equal(t, want, out.String())
}
