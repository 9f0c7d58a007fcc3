package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindWeekday(t *testing.T) {
	cases := []struct {
		in   string
		want Weekday
		ok   bool
	}{
		{"Wednesday", Wednesday, true},
		{"tue evening", Tuesday, true},
		{"every Thurs.", Thursday, true},
		{"Mondays", Monday, true},
		{"Monday-morning", Monday, true},
		{"Thursday/Friday", Thursday, true},
		{"Thu/Fri", Thursday, true},
		{"late SATURDAYS only", Saturday, true},
		{"Sundays", Sunday, true},
		{"Anytime", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got, ok := FindWeekday(c.in)
		assert.Equal(t, c.ok, ok, c.in)
		assert.Equal(t, c.want, got, c.in)
	}
}

func TestParseWeekday(t *testing.T) {
	d, ok := ParseWeekday("wed")
	assert.True(t, ok)
	assert.Equal(t, Wednesday, d)

	_, ok = ParseWeekday("we")
	assert.False(t, ok)
	_, ok = ParseWeekday("wedding")
	assert.False(t, ok)
}
