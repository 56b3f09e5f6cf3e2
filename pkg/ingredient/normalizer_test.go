package ingredient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	n := MustNewNormalizer()

	tests := []struct {
		in, want string
	}{
		{"Lait", "milk"},
		{"  lait 2%  ", "milk"},
		{"POULET ENTIER", "whole chicken"},
		{"Pommes de terre", "potatoes"},
		{"Œufs", "eggs"},
		{"oeufs", "eggs"},
		{"Épinards", "spinach"},
		{"pâtes", "pasta"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, n.Translate(tt.in), tt.in)
	}
}

func TestTranslate_UnknownReturnsInputUnchanged(t *testing.T) {
	n := MustNewNormalizer()

	assert.Equal(t, "Quinoa Rouge", n.Translate("Quinoa Rouge"))
	assert.Equal(t, "", n.Translate(""))
}

func TestTranslateAll_PreservesOrder(t *testing.T) {
	n := MustNewNormalizer()

	got := n.TranslateAll([]string{"Poulet", "Tofu", "Carottes"})
	assert.Equal(t, []string{"chicken", "Tofu", "carrots"}, got)
}

func TestParseLexicon(t *testing.T) {
	n, err := ParseLexicon([]byte("misc:\n  Navet: turnip\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, n.Len())
	assert.Equal(t, "turnip", n.Translate("navet"))

	_, err = ParseLexicon([]byte("not: [valid"))
	assert.Error(t, err)
}

func TestEmbeddedLexiconSize(t *testing.T) {
	assert.Equal(t, 38, MustNewNormalizer().Len())
}
