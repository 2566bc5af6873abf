package logger

import (
	"fmt"
	"log"
	"regexp"
	"strings"
	"sync/atomic"

	"github.com/cornelk/hashmap"
)

const (
	ERROR   = 1
	INFO    = 2
	VERBOSE = 3
	DEBUG   = 7
)

var levelNames = map[string]int{
	"error":   ERROR,
	"info":    INFO,
	"verbose": VERBOSE,
	"debug":   DEBUG,
}

// repeats caps how many times one rendered message may be printed.
type repeats struct {
	max    int
	counts *hashmap.HashMap
}

func (r *repeats) allow(out string) bool {
	if r.max == 0 {
		return true
	}
	var zero int64
	v, _ := r.counts.GetOrInsert(out, &zero)
	n := atomic.AddInt64(v.(*int64), 1)
	return n <= int64(r.max)
}

var (
	current = INFO
	pattern *regexp.Regexp
	limiter = &repeats{counts: &hashmap.HashMap{}}
)

func SetLevel(l int) {
	current = l
}

func Level() int {
	return current
}

// ParseLevel accepts a level name or its number.
func ParseLevel(name string) (int, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if l, ok := levelNames[name]; ok {
		return l, nil
	}
	var l int
	_, err := fmt.Sscanf(name, "%d", &l)
	if err != nil || l < 0 {
		return 0, fmt.Errorf("invalid log level %q", name)
	}
	return l, nil
}

func SetLimiter(n int) {
	limiter.max = n
}

// SetFilter keeps only messages matching the RE2 expression, see
// https://github.com/google/re2/wiki/Syntax. An empty expression clears it.
func SetFilter(expr string) error {
	if expr == "" {
		pattern = nil
		return nil
	}
	reg, err := regexp.Compile(expr)
	if err != nil {
		return err
	}
	pattern = reg
	return nil
}

func Println(v ...interface{}) {
	output(INFO, strings.TrimSuffix(fmt.Sprintln(v...), "\n"))
}

func Printf(format string, v ...interface{}) {
	output(INFO, fmt.Sprintf(format, v...))
}

func Errorf(format string, v ...interface{}) {
	output(ERROR, fmt.Sprintf(format, v...))
}

func Verbosef(format string, v ...interface{}) {
	output(VERBOSE, fmt.Sprintf(format, v...))
}

func Debugf(format string, v ...interface{}) {
	output(DEBUG, fmt.Sprintf(format, v...))
}

func output(l int, out string) {
	if current < l || !matches(out) || !limiter.allow(out) {
		return
	}
	log.Print(out)
}

func matches(out string) bool {
	return pattern == nil || pattern.MatchString(out)
}
