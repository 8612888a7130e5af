package enumerate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sanskrit-grammar/prakriya/example"
)

func TestEnumerator_FindsBothToyForms(t *testing.T) {
	e := New(example.Derive)
	result := e.Run()

	assert.False(t, result.Truncated)
	assert.Contains(t, result.Forms, "rAmAtra")
	assert.Contains(t, result.Forms, "rAmaatra")
	assert.Len(t, result.Forms, 2)
}

func TestEnumerator_Parallel_SameResultAsSequential(t *testing.T) {
	seq := New(example.Derive).Run()

	par := &Enumerator{Derive: example.Derive, Workers: 4}
	parResult := par.Run()

	assert.Equal(t, seq.Texts(), parResult.Texts())
}

func TestEnumerator_TruncatesGracefullyWhenCapIsHit(t *testing.T) {
	e := &Enumerator{Derive: example.Derive, MaxDerivations: 1}
	result := e.Run()

	assert.True(t, result.Truncated)
	assert.Equal(t, 1, result.DerivationCount)
	assert.NotEmpty(t, result.Forms)
}

func TestEnumerator_DoesNotReexploreSameSeedTwice(t *testing.T) {
	e := New(example.Derive)
	result := e.Run()
	// One Accept(toy-vowel-merge) fork point exists on the default path, so
	// the whole tree is covered in exactly two derivations: the initial
	// empty-seed run and its single Decline fork.
	assert.Equal(t, 2, result.DerivationCount)
}
