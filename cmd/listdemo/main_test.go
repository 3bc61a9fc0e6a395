package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDefaultScenario(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, run(cfg, &out))

	want := "" +
		"Added node with value 10 to the list.\n" +
		"Added node with value 20 to the list.\n" +
		"Added node with value 30 to the list.\n" +
		"Added node with value 40 to the list.\n" +
		"Added node with value 50 to the list.\n" +
		"Added node with value 60 to the list.\n" +
		"Initial list:\n" +
		"10 -> 20 -> 30 -> 40 -> 50 -> 60\n" +
		"Deleting node at position 3 with value 30\n" +
		"List after deleting 3rd node:\n" +
		"10 -> 20 -> 40 -> 50 -> 60\n" +
		"Deleting node at position 1 with value 10\n" +
		"List after deleting head node:\n" +
		"20 -> 40 -> 50 -> 60\n" +
		"Error: position past the end: index 10 out of the given range\n" +
		"Error: nothing to delete: cannot delete from an empty list\n"
	assert.Equal(t, want, out.String())
}

func TestRunInvalidIndex(t *testing.T) {
	cfg, err := parseFlags([]string{"-values", "1, 2", "-delete", "0,2", "-empty-check=false"})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, cfg.values)

	var out bytes.Buffer
	require.NoError(t, run(cfg, &out))
	assert.Contains(t, out.String(), "Error: bad position: index must be a positive integer, got 0\n")
	assert.Contains(t, out.String(), "List after deleting 2nd node:\n1\n")
	assert.NotContains(t, out.String(), "nothing to delete")
}

func TestRunEmptyValues(t *testing.T) {
	cfg, err := parseFlags([]string{"-values", "", "-delete", "1", "-empty-check=false"})
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, run(cfg, &out))
	assert.Equal(t, "Initial list:\nList is empty.\nError: nothing to delete: cannot delete from an empty list\n", out.String())
}

func TestParseFlagsRejectsGarbage(t *testing.T) {
	_, err := parseFlags([]string{"-values", "1,x"})
	assert.ErrorContains(t, err, "-values")

	_, err = parseFlags([]string{"-delete", "one"})
	assert.ErrorContains(t, err, "-delete")
}

type brokenWriter struct{}

var errClosed = errors.New("closed")

func (brokenWriter) Write([]byte) (int, error) { return 0, errClosed }

func TestRunWriteError(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.ErrorIs(t, run(cfg, brokenWriter{}), errClosed)
}

func TestOrdinal(t *testing.T) {
	tests := []struct {
		pos  int
		want string
	}{
		{1, "head"},
		{2, "2nd"},
		{3, "3rd"},
		{4, "4th"},
		{11, "11th"},
		{12, "12th"},
		{13, "13th"},
		{21, "21st"},
		{22, "22nd"},
		{101, "101st"},
		{111, "111th"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ordinal(tt.pos), "ordinal(%d)", tt.pos)
	}
}
