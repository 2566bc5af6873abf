package logger

import (
	"bytes"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	assert := assert.New(t)
	defer SetFilter("")

	assert.True(matches("add 1/2 and 1/3"))

	err := SetFilter("pow")
	assert.Nil(err)
	assert.False(matches("add 1/2 and 1/3"))
	assert.False(matches("POW 1/2 by 2"))
	assert.True(matches("pow 1/2 by 2"))

	err = SetFilter("(?i)pow")
	assert.Nil(err)
	assert.True(matches("POW 1/2 by 2"))
	assert.False(matches("div 1/2 by 3/4"))

	err = SetFilter("(?i)pow|div")
	assert.Nil(err)
	assert.True(matches("div 1/2 by 3/4"))
	assert.False(matches("mul 1/2 and 3/4"))

	err = SetFilter("(")
	assert.NotNil(err)
	err = SetFilter("")
	assert.Nil(err)
	assert.True(matches("mul 1/2 and 3/4"))
}

func TestLimiter(t *testing.T) {
	assert := assert.New(t)
	defer SetLimiter(0)

	assert.True(limiter.allow("sub 1/2 and 1/3"))
	SetLimiter(10)
	for i := 0; i < 10; i++ {
		assert.True(limiter.allow("sub 1/5 and 1/3"))
	}
	assert.False(limiter.allow("sub 1/5 and 1/3"))
	assert.True(limiter.allow("sub 1/5 and 1/4"))
}

func TestLevel(t *testing.T) {
	assert := assert.New(t)
	defer SetLevel(INFO)
	defer SetFilter("")

	l, err := ParseLevel("debug")
	assert.Nil(err)
	assert.Equal(DEBUG, l)
	l, err = ParseLevel(" Verbose ")
	assert.Nil(err)
	assert.Equal(VERBOSE, l)
	l, err = ParseLevel("1")
	assert.Nil(err)
	assert.Equal(ERROR, l)
	_, err = ParseLevel("loud")
	assert.NotNil(err)
	_, err = ParseLevel("-2")
	assert.NotNil(err)

	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	SetLevel(ERROR)
	assert.Equal(ERROR, Level())
	Verbosef("eq %s %s", "1/2", "2/4")
	Printf("lt %s %s", "1/2", "3/4")
	Println("le", "1/2", "3/4")
	assert.Empty(buf.String())
	Errorf("div %s by %s", "1/2", "0")
	assert.Contains(buf.String(), "div 1/2 by 0")

	buf.Reset()
	SetLevel(DEBUG)
	Debugf("gt %s %s", "3/4", "1/2")
	Println("ge", "3/4", "1/2")
	assert.Contains(buf.String(), "gt 3/4 1/2")
	assert.Contains(buf.String(), "ge 3/4 1/2")

	buf.Reset()
	err = SetFilter("^pow")
	assert.Nil(err)
	Printf("add %s %s", "1/2", "1/3")
	Printf("pow %s %d", "1/2", 2)
	assert.NotContains(buf.String(), "add")
	assert.Contains(buf.String(), "pow 1/2 2")
}
