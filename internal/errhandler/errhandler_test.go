package errhandler

import (
	"errors"
	"fmt"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
)

func TestIsInterrupt(t *testing.T) {
	assert.True(t, IsInterrupt(terminal.InterruptErr))
	assert.True(t, IsInterrupt(fmt.Errorf("select employee: %w", huh.ErrUserAborted)))
	assert.False(t, IsInterrupt(errors.New("interrupted by something else")))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "", Capitalize(""))
	assert.Equal(t, "Fetch failed", Capitalize("fetch failed"))
	assert.Equal(t, "Ünicode", Capitalize("ünicode"))
}
