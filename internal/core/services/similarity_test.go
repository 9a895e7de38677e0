package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosine(t *testing.T) {
	t.Run("identical bags", func(t *testing.T) {
		a := bagOfWords([]string{"the", "sky", "is", "blue"})
		assert.InDelta(t, 1.0, Cosine(a, a), 1e-9)
	})

	t.Run("disjoint bags", func(t *testing.T) {
		a := bagOfWords([]string{"sun", "bright"})
		b := bagOfWords([]string{"rain", "cold"})
		assert.InDelta(t, 0.0, Cosine(a, b), 1e-9)
	})

	t.Run("empty bag", func(t *testing.T) {
		a := bagOfWords([]string{"sky"})
		assert.Equal(t, 0.0, Cosine(a, map[string]float64{}))
		assert.Equal(t, 0.0, Cosine(map[string]float64{}, a))
	})

	t.Run("partial overlap scores between", func(t *testing.T) {
		a := bagOfWords([]string{"sky", "blue"})
		b := bagOfWords([]string{"sky", "grey"})
		score := Cosine(a, b)
		assert.Greater(t, score, 0.0)
		assert.Less(t, score, 1.0)
	})
}

func TestBestParagraph(t *testing.T) {
	paragraphs := []string{
		"Stock markets fell sharply on Monday.",
		"The sky appears blue because of Rayleigh scattering.",
		"Recipes for sourdough bread vary widely.",
	}

	best, score := BestParagraph("The sky is blue.", paragraphs)
	assert.Equal(t, "The sky appears blue because of Rayleigh scattering.", best)
	assert.Greater(t, score, 0.0)
}

func TestBestParagraphNoOverlap(t *testing.T) {
	best, score := BestParagraph("quantum chromodynamics", []string{"apples and oranges"})
	assert.Equal(t, "", best)
	assert.Equal(t, 0.0, score)
}

func TestBestParagraphTruncates(t *testing.T) {
	long := "sky " + strings.Repeat("x", 2000)
	best, _ := BestParagraph("sky", []string{long})
	assert.Len(t, []rune(best), maxMatchedTextLength)
}

func TestBestParagraphEmptyInput(t *testing.T) {
	best, score := BestParagraph("anything", nil)
	assert.Equal(t, "", best)
	assert.Equal(t, 0.0, score)
}
