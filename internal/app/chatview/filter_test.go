package chatview

import (
	"testing"

	"github.com/SHEBN-DEV/Demoshebn/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestFilterContacts(t *testing.T) {
	contacts := []domain.User{{Name: "Ana"}, {Name: "Beatriz"}}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "substring", query: "an", want: []string{"Ana"}},
		{name: "case insensitive", query: "BEA", want: []string{"Beatriz"}},
		{name: "empty", query: "", want: []string{"Ana", "Beatriz"}},
		{name: "no match", query: "zz", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterContacts(contacts, tt.query)
			names := make([]string, 0, len(got))
			for _, c := range got {
				names = append(names, c.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}
