package affiliates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"cr5499637", "CR5499637"},
		{" CR5499637 ", "CR5499637"},
		{"  cr123  ", "CR123"},
		{"CR999", "CR999"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expected, Normalize(tc.input), "input %q", tc.input)
	}
}

func TestRegistryIsEligible(t *testing.T) {
	r := NewRegistry([]string{"CR5499637", "CR1111111"})

	assert.True(t, r.IsEligible("CR5499637"))
	assert.True(t, r.IsEligible(Normalize(" cr5499637 ")))
	assert.False(t, r.IsEligible("CR2222222"))
	assert.False(t, r.IsEligible(""))
}

func TestDefaultRegistry(t *testing.T) {
	r := Default()

	assert.True(t, r.Size() > 300)
	assert.True(t, r.IsEligible("CR5499637"))
	assert.False(t, r.IsEligible("CR0000000"))
}
