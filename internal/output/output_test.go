package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessagesEndWithNewline(t *testing.T) {
	testCases := []struct {
		name  string
		print func(*bytes.Buffer)
		want  string
	}{
		{"success", func(b *bytes.Buffer) { Success(b, "saved %s", "Burger") }, "saved Burger\n"},
		{"warning", func(b *bytes.Buffer) { Warning(b, "low %d", 3) }, "low 3\n"},
		{"error", func(b *bytes.Buffer) { Error(b, "failed") }, "failed\n"},
		{"info", func(b *bytes.Buffer) { Info(b, "note") }, "note\n"},
		{"line", func(b *bytes.Buffer) { Line(b, "plain") }, "plain\n"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			buf := new(bytes.Buffer)
			tt.print(buf)
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestSectionUnderlinesTitle(t *testing.T) {
	buf := new(bytes.Buffer)
	Section(buf, "Menu")
	assert.Contains(t, buf.String(), "Menu")
	assert.Contains(t, buf.String(), "════")
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "$8.50", Money(8.5))
	assert.Equal(t, "$0.00", Money(0))
	assert.Equal(t, "$-1.25", Money(-1.25))
}

func TestTableRendersCells(t *testing.T) {
	buf := new(bytes.Buffer)
	Table(buf, []string{"dish_name", "price"}, [][]any{{"Burger", 8.5}, {[]byte("Soup"), nil}})

	out := buf.String()
	assert.Contains(t, out, "dish_name")
	assert.Contains(t, out, "Burger")
	assert.Contains(t, out, "8.5")
	assert.Contains(t, out, "Soup")
	assert.Contains(t, out, "NULL")
}
