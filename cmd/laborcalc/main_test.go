package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_Flags(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-type", "Quick Service", "-revenue", "1000", "-labor", "300", "-share"}, &stdout, &stderr)

	assert.Equal(t, 0, code, stderr.String())
	out := stdout.String()
	assert.Contains(t, out, "30.0%")
	assert.Contains(t, out, "Above Standard")
	assert.Contains(t, out, "?period=Monthly")
}

func TestRun_DetailedComponents(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{
		"-type", "Fine Dining", "-period", "Weekly", "-revenue", "1000",
		"-detailed", "-hourly-wages", "150", "-benefits", "50",
	}, &stdout, &stderr)

	assert.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "20.0%")
	assert.Contains(t, stdout.String(), "Below Standard")
}

func TestRun_Query(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-query", "?restaurantType=Casual+Dining&revenue=1000&totalLaborCost=280"}, &stdout, &stderr)

	assert.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "Within Range")
}

func TestRun_InvalidInput(t *testing.T) {
	tests := [][]string{
		{"-revenue", "-10"},
		{"-period", "Daily"},
		{"-query", "revenue=abc"},
		{"-unknown-flag"},
	}

	for _, args := range tests {
		var stdout, stderr bytes.Buffer
		assert.Equal(t, 2, run(args, &stdout, &stderr), args)
		assert.NotEmpty(t, stderr.String(), args)
	}
}

func TestRun_UsageListsPeriods(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-h"}, &stdout, &stderr)

	assert.Equal(t, 2, code)
	assert.Contains(t, stderr.String(), "reporting period: Weekly, Monthly, Yearly")
}

func TestRun_OverflowRejected(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-revenue", "1e-10", "-labor", "1e308"}, &stdout, &stderr)

	assert.Equal(t, 2, code)
	assert.Contains(t, stderr.String(), "too large")
	assert.Empty(t, stdout.String())
}
