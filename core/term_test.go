package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sanskrit-grammar/prakriya/tag"
)

func TestTerm_TextAndExtend(t *testing.T) {
	term := NewTerm("kft")
	assert.Equal(t, "kft", term.Text())
	term.Extend("i")
	assert.Equal(t, "kfti", term.Text())
}

func TestTerm_IsEmpty(t *testing.T) {
	assert.True(t, NewTerm("").IsEmpty())
	assert.False(t, NewTerm("a").IsEmpty())
}

func TestTerm_Tags(t *testing.T) {
	term := NewTerm("gacC")
	assert.False(t, term.HasTag(tag.Dhatu))
	term.AddTag(tag.Dhatu)
	assert.True(t, term.HasTag(tag.Dhatu))
	assert.True(t, term.IsDhatu())
	term.RemoveTag(tag.Dhatu)
	assert.False(t, term.HasTag(tag.Dhatu))
}

func TestTerm_LastAndPenultimateSound(t *testing.T) {
	term := NewTerm("karoti")
	assert.Equal(t, "i", term.LastSound())
	assert.Equal(t, "t", term.PenultimateSound())
}

func TestTerm_LastSound_Empty(t *testing.T) {
	term := NewTerm("")
	assert.Equal(t, "", term.LastSound())
	assert.Equal(t, "", term.PenultimateSound())
}

func TestTerm_ReplaceRange(t *testing.T) {
	term := NewTerm("karoti")
	term.ReplaceRange(5, 5, "")
	assert.Equal(t, "karot", term.Text())
}

func TestTerm_ReplaceRange_OutOfRange_Panics(t *testing.T) {
	term := NewTerm("ab")
	assert.Panics(t, func() {
		term.ReplaceRange(5, 5, "x")
	})
}

func TestTerm_Sthanivat(t *testing.T) {
	term := NewTerm("iz")
	_, ok := term.Sthanivat()
	assert.False(t, ok)

	term.SaveSthanivat()
	term.SetText("y")
	snap, ok := term.Sthanivat()
	assert.True(t, ok)
	assert.Equal(t, "iz", snap)
	assert.Equal(t, "y", term.Text())
}

func TestTerm_Clone_IsIndependent(t *testing.T) {
	term := NewTerm("pat")
	term.AddTag(tag.Dhatu)
	term.SaveSthanivat()

	clone := term.Clone()
	clone.SetText("pad")
	clone.AddTag(tag.Pada)

	assert.Equal(t, "pat", term.Text())
	assert.False(t, term.HasTag(tag.Pada))
	assert.Equal(t, "pad", clone.Text())
	assert.True(t, clone.HasTag(tag.Dhatu))
	assert.True(t, clone.HasTag(tag.Pada))
}

func TestTerm_GanaAntargana(t *testing.T) {
	term := NewTerm("BU")
	term.SetGana("01.0001")
	term.SetAntargana("kut")
	assert.Equal(t, "01.0001", term.Gana())
	assert.Equal(t, "kut", term.Antargana())
}
