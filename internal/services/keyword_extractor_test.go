package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractKeywords(t *testing.T) {
	t.Run("finds terms in vocabulary order", func(t *testing.T) {
		text := "I want more balance in my life, maybe yoga or meditation"

		keywords := ExtractKeywords(text)

		assert.Equal(t, []string{"yoga", "meditation", "balance"}, keywords)
	})

	t.Run("matching is case insensitive", func(t *testing.T) {
		keywords := ExtractKeywords("YOGA and Meditation helped with my ANXIETY")

		assert.Equal(t, []string{"yoga", "meditation", "anxiety"}, keywords)
	})

	t.Run("substring containment, no word boundaries", func(t *testing.T) {
		// "healthy" contains "health"
		keywords := ExtractKeywords("trying to stay healthy")

		assert.Equal(t, []string{"health"}, keywords)
	})

	t.Run("multi word terms match", func(t *testing.T) {
		keywords := ExtractKeywords("I've been focusing on my mental health")

		assert.Contains(t, keywords, "mental health")
		assert.Contains(t, keywords, "health")
	})

	t.Run("no matches yields empty result", func(t *testing.T) {
		keywords := ExtractKeywords("bought groceries and did laundry")

		assert.Empty(t, keywords)
	})

	t.Run("deterministic across calls", func(t *testing.T) {
		text := "stress, nature and healing"

		first := ExtractKeywords(text)
		second := ExtractKeywords(text)

		assert.Equal(t, first, second)
	})
}
