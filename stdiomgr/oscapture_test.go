package stdiomgr

import (
	"bufio"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestOSCaptureOutput(t *testing.T) {
	origOut, origErr := os.Stdout, os.Stderr

	s, err := OpenOS()
	require.NoError(t, err)

	fmt.Println("hello out")
	fmt.Fprintln(os.Stderr, "hello err")
	s.Restore()

	assert.Equal(t, "hello out\n", s.Stdout().Value())
	assert.Equal(t, "hello err\n", s.Stderr().Value())
	assert.Same(t, origOut, os.Stdout)
	assert.Same(t, origErr, os.Stderr)
}

func TestOSCaptureStdin(t *testing.T) {
	s, err := OpenOS(WithInput("ping\n"))
	require.NoError(t, err)
	defer s.Restore()

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	assert.Nil(t, err)
	assert.Equal(t, "ping\n", line)
}

func TestOSCaptureAppend(t *testing.T) {
	s, err := OpenOS()
	require.NoError(t, err)
	defer s.Restore()

	assert.Nil(t, s.Append("second\n"))
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	assert.Nil(t, err)
	assert.Equal(t, "second\n", line)
}

func TestOSCaptureRepeated(t *testing.T) {
	for i := 0; i < 3; i++ {
		s, err := OpenOS()
		require.NoError(t, err)
		fmt.Printf("round %d\n", i)
		s.Restore()
		assert.Equal(t, fmt.Sprintf("round %d\n", i), s.Stdout().Value())
	}
}

func TestOSCaptureRestoreIdempotent(t *testing.T) {
	origOut := os.Stdout

	s, err := OpenOS()
	require.NoError(t, err)
	s.Restore()
	s.Restore()
	assert.Same(t, origOut, os.Stdout)
}

