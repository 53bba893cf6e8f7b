package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsrefhub/backend/internal/logging"
)

const samplePage = `id: bigint
title: BigInt
description: Arbitrary-precision integers.
overview: BigInt values represent integers beyond Number.MAX_SAFE_INTEGER.
syntax_example: |
  const big = 9007199254740993n;
  console.log(big + 1n);
category: numbers-and-dates
tags:
  - number
  - precision
use_cases:
  - title: Safe large arithmetic
    code: console.log(2n ** 64n);
    explanation: Exponentiation stays exact at any magnitude.
`

func TestSeederLoadsYAMLPages(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bigint.yaml"), []byte(samplePage), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	m := NewManager()
	seeder := NewSeeder(m, dir, logging.NewNop())

	require.NoError(t, seeder.SeedPages())

	page, ok := m.Get("bigint")
	require.True(t, ok)
	assert.Equal(t, "BigInt", page.Title)
	assert.Contains(t, page.SyntaxExample, "9007199254740993n")
	require.Len(t, page.UseCases, 1)
	assert.Equal(t, "Safe large arithmetic", page.UseCases[0].Title)
	assert.Equal(t, 1, m.Count())
}

func TestSeederMissingDirectory(t *testing.T) {
	m := NewManager()
	seeder := NewSeeder(m, filepath.Join(t.TempDir(), "nope"), logging.NewNop())

	require.NoError(t, seeder.SeedPages())
	assert.Equal(t, 0, m.Count())
}

func TestSeederDefaults(t *testing.T) {
	m := NewManager()
	seeder := NewSeeder(m, t.TempDir(), logging.NewNop())

	require.NoError(t, seeder.SeedDefaults())

	for _, id := range []string{"array", "map", "set", "promise", "proxy", "symbol", "weakmap", "json"} {
		_, ok := m.Get(id)
		assert.True(t, ok, "missing default page %s", id)
	}
}

func TestSeederContentWinsOverDefaults(t *testing.T) {
	dir := t.TempDir()
	custom := "id: array\ntitle: Array (custom)\ndescription: overridden\noverview: o\nsyntax_example: console.log(1)\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "array.yml"), []byte(custom), 0o644))

	m := NewManager()
	seeder := NewSeeder(m, dir, logging.NewNop())
	require.NoError(t, seeder.SeedPages())
	require.NoError(t, seeder.SeedDefaults())

	page, ok := m.Get("array")
	require.True(t, ok)
	assert.Equal(t, "Array (custom)", page.Title)
}
