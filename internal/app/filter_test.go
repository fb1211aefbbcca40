package app

import (
	"testing"

	"github.com/chmouel/swipemenu/internal/models"
	"github.com/stretchr/testify/assert"
)

func filterFixture() []*Row {
	titles := []struct{ title, file string }{
		{"Item [1] should have [2] lines of description", "brave-falcon.go"},
		{"Item [2] should have [0] lines of description", "quiet-river.md"},
		{"Item [3] should have [5] lines of description", "swift-otter.yaml"},
	}
	rows := make([]*Row, 0, len(titles))
	for _, tt := range titles {
		rows = append(rows, &Row{item: &models.Item{Title: tt.title, File: tt.file}})
	}
	return rows
}

func TestFilterRows(t *testing.T) {
	rows := filterFixture()

	tests := []struct {
		name  string
		query string
		want  []int
	}{
		{name: "empty keeps everything", query: "  ", want: []int{0, 1, 2}},
		{name: "substring of title", query: "item [2]", want: []int{1}},
		{name: "substring of file", query: "OTTER", want: []int{2}},
		{name: "near miss", query: "falcn", want: []int{0}},
		{name: "no match", query: "zzzzzz", want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filterRows(rows, tt.query)
			want := make([]*Row, 0, len(tt.want))
			for _, i := range tt.want {
				want = append(want, rows[i])
			}
			assert.Equal(t, want, got)
		})
	}
}

func TestFilterRowsRanksExactBeforeFuzzy(t *testing.T) {
	rows := filterFixture()
	rows = append(rows, &Row{item: &models.Item{Title: "river", File: "x.go"}})

	got := filterRows(rows, "rivr")
	assert.Len(t, got, 2)

	got = filterRows(rows, "river")
	assert.Equal(t, []*Row{rows[1], rows[3]}, got)
}
