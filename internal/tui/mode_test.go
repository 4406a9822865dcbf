package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMode_String(t *testing.T) {
	tests := []struct {
		want string
		mode Mode
	}{
		{"normal", ModeNormal},
		{"search", ModeSearch},
		{"confirm", ModeConfirm},
		{"form", ModeForm},
		{"help", ModeHelp},
		{"detail", ModeDetail},
		{"unknown", Mode(99)},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.mode.String())
		})
	}
}

func TestMode_IsInputMode(t *testing.T) {
	tests := []struct {
		mode Mode
		want bool
	}{
		{ModeNormal, false},
		{ModeSearch, true},
		{ModeConfirm, false},
		{ModeForm, true},
		{ModeHelp, false},
		{ModeDetail, false},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.mode.IsInputMode())
		})
	}
}

func TestConfirmAction_String(t *testing.T) {
	assert.Equal(t, "", ConfirmNone.String())
	assert.Equal(t, "delete", ConfirmDelete.String())
}
