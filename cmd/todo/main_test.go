package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTasksFileArg(t *testing.T) {
	tests := []struct {
		name string
		want string
		args []string
	}{
		{
			name: "no args",
			args: nil,
			want: "",
		},
		{
			name: "global flag before command",
			args: []string{"--file", "/tmp/tasks.json", "list"},
			want: "/tmp/tasks.json",
		},
		{
			name: "equals form after command",
			args: []string{"list", "-s", "done", "--file=work.json"},
			want: "work.json",
		},
		{
			name: "other flags only",
			args: []string{"add", "-t", "Write report", "--dry-run"},
			want: "",
		},
		{
			name: "help flag",
			args: []string{"--help", "--file", "x.json"},
			want: "x.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tasksFileArg(tt.args))
		})
	}
}

func TestCanRunWithoutContainer(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{name: "no args", args: nil, want: false},
		{name: "help flag", args: []string{"--help"}, want: true},
		{name: "short help on subcommand", args: []string{"add", "-h"}, want: true},
		{name: "version flag", args: []string{"--version"}, want: true},
		{name: "help subcommand", args: []string{"help", "add"}, want: true},
		{name: "regular command", args: []string{"list"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, canRunWithoutContainer(tt.args))
		})
	}
}
