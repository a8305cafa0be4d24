package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "Simple name",
			input: "Colares",
			want:  "colares",
		},
		{
			name:  "Diacritics folded",
			input: "Anéis",
			want:  "aneis",
		},
		{
			name:  "Spaces become hyphens",
			input: "Alianças de Ouro",
			want:  "aliancas-de-ouro",
		},
		{
			name:  "Punctuation collapses",
			input: "Ouro 18k / Edição Limitada!",
			want:  "ouro-18k-edicao-limitada",
		},
		{
			name:  "Leading and trailing separators trimmed",
			input: "  Pulseiras  ",
			want:  "pulseiras",
		},
		{
			name:  "Digits preserved",
			input: "Prata 925",
			want:  "prata-925",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}
