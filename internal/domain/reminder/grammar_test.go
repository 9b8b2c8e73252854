package reminder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchTaskRequest_ValidRequests(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		wantNotifyAt string
		wantBody     string
	}{
		{
			name:         "cyrillic body",
			text:         "01.01.2022 20:00 Сделать домашнюю работу",
			wantNotifyAt: "01.01.2022 20:00",
			wantBody:     "Сделать домашнюю работу",
		},
		{
			name:         "latin body",
			text:         "15.06.2023 09:30 buy milk",
			wantNotifyAt: "15.06.2023 09:30",
			wantBody:     "buy milk",
		},
		{
			name:         "leading characters before the token are discarded",
			text:         "напомни мне 01.01.2022 20:00 купить хлеб",
			wantNotifyAt: "01.01.2022 20:00",
			wantBody:     "купить хлеб",
		},
		{
			name: "lexically valid but impossible date still matches",
			// Calendar validity is ParseNotifyAt's job, not the grammar's.
			text:         "31.02.2022 10:00 test",
			wantNotifyAt: "31.02.2022 10:00",
			wantBody:     "test",
		},
		{
			name:         "body stops at punctuation",
			text:         "01.01.2022 20:00 сходить в магазин, потом домой",
			wantNotifyAt: "01.01.2022 20:00",
			wantBody:     "сходить в магазин",
		},
		{
			name:         "trailing digits are dropped from the body",
			text:         "01.01.2022 20:00 позвонить в офис 42",
			wantNotifyAt: "01.01.2022 20:00",
			wantBody:     "позвонить в офис ",
		},
		{
			name:         "letter yo is part of the body",
			text:         "01.01.2022 20:00 полёт",
			wantNotifyAt: "01.01.2022 20:00",
			wantBody:     "полёт",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request, ok := MatchTaskRequest(tt.text)
			require.True(t, ok)
			assert.Equal(t, tt.wantNotifyAt, request.RawNotifyAt)
			assert.Equal(t, tt.wantBody, request.Body)
		})
	}
}

func TestMatchTaskRequest_NoMatch(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "plain text", text: "hello"},
		{name: "time before date", text: "10:00 01.01.2022 test"},
		{name: "single-digit day", text: "1.01.2022 20:00 test"},
		{name: "two-digit year", text: "01.01.22 20:00 test"},
		{name: "missing body", text: "01.01.2022 20:00"},
		{name: "digits-only body", text: "01.01.2022 20:00 12345"},
		{name: "empty string", text: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := MatchTaskRequest(tt.text)
			assert.False(t, ok)
		})
	}
}
