package iocli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Проверяем что NewStdio возвращает валидный объект
func TestNewStdio(t *testing.T) {
	stdio := NewStdio()
	assert.NotNil(t, stdio)
}

func TestPrintlnAndPrintf(t *testing.T) {
	var out bytes.Buffer
	stdio := NewStdioWith(strings.NewReader(""), &out)

	stdio.Println("hello", "world")
	stdio.Printf("test %d %s", 1, "abc")
	_, err := stdio.Write([]byte("!"))
	require.NoError(t, err)

	assert.Equal(t, "hello world\ntest 1 abc!", out.String())
}

func TestReadInput(t *testing.T) {
	var out bytes.Buffer
	stdio := NewStdioWith(strings.NewReader("  user input \nsecond\n"), &out)

	result, err := stdio.ReadInput("Prompt: ")
	require.NoError(t, err)
	assert.Equal(t, "user input", result)
	assert.Equal(t, "Prompt: ", out.String())

	// Следующая строка не теряется в буфере
	result, err = stdio.ReadInput("")
	require.NoError(t, err)
	assert.Equal(t, "second", result)
}

// Без терминала пароль читается как строка; последняя строка без \n допустима
func TestReadPassword_NotTerminal(t *testing.T) {
	stdio := NewStdioWith(strings.NewReader("secret123"), io.Discard)

	password, err := stdio.ReadPassword("Password: ")
	require.NoError(t, err)
	assert.Equal(t, "secret123", password)

	_, err = stdio.ReadPassword("Password: ")
	assert.ErrorIs(t, err, io.EOF)
}
