package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigFlag(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "absent", args: []string{"list", "-p", "2"}, want: ""},
		{name: "long", args: []string{"--config", "/tmp/tally.yaml", "browse"}, want: "/tmp/tally.yaml"},
		{name: "short after command", args: []string{"list", "-c", "cfg.yaml", "-e", "e1"}, want: "cfg.yaml"},
		{name: "equals", args: []string{"info", "--config=x.yaml"}, want: "x.yaml"},
		{name: "help", args: []string{"--help"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, configFlag(tt.args))
		})
	}
}
