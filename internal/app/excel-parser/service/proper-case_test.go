package excel_parser_service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProperCase(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"juan", "Juan"},
		{"JUAN CARLOS", "Juan Carlos"},
		{"mAría  josé", "María  José"},
		{" ana ", " Ana "},
		{"o'higgins", "O'higgins"},
		{"ñandú", "Ñandú"},
		{"123 abc", "123 Abc"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ProperCase(tc.in), tc.in)
	}
}

func TestProperCase_Idempotent(t *testing.T) {
	inputs := []string{
		"", " ", "juan", "JUAN CARLOS", "mAría  josé", "ÉMILE zola", "ǆemal", "straße", "İstanbul", "x y z",
	}

	for _, in := range inputs {
		once := ProperCase(in)
		assert.Equal(t, once, ProperCase(once), in)
	}
}
