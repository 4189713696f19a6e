package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew_ReadsEnvironment(t *testing.T) {
	t.Setenv("PORTFOLIO_TEST_KEY", "a=b")

	c := New()

	assert.Equal(t, "a=b", c["PORTFOLIO_TEST_KEY"])
}

func TestGetters(t *testing.T) {
	c := map[string]string{
		"NAME":    "site",
		"EMPTY":   "",
		"NUM":     " 42 ",
		"BAD_NUM": "forty",
		"FLAG":    "true",
		"BAD":     "maybe",
		"LIST":    "a, b,,c ",
		"BLANKS":  " , ,",
	}

	assert.Equal(t, "site", GetString(c, "NAME", "x"))
	assert.Equal(t, "x", GetString(c, "EMPTY", "x"))
	assert.Equal(t, "x", GetString(c, "MISSING", "x"))
	assert.Equal(t, "x", GetString(nil, "NAME", "x"))

	assert.Equal(t, 42, GetInt(c, "NUM", 1))
	assert.Equal(t, 1, GetInt(c, "BAD_NUM", 1))
	assert.Equal(t, 1, GetInt(c, "MISSING", 1))

	assert.True(t, GetBool(c, "FLAG", false))
	assert.False(t, GetBool(c, "BAD", false))
	assert.True(t, GetBool(c, "MISSING", true))

	assert.Equal(t, []string{"a", "b", "c"}, GetStrings(c, "LIST", nil))
	assert.Equal(t, []string{"d"}, GetStrings(c, "BLANKS", []string{"d"}))
	assert.Nil(t, GetStrings(c, "MISSING", nil))

	assert.Equal(t, 42*time.Second, GetSeconds(c, "NUM", 3))
}

func TestFromMap_Defaults(t *testing.T) {
	s := FromMap(map[string]string{})

	assert.Equal(t, "0.0.0.0:3000", s.Address())
	assert.Equal(t, "portfolio.db", s.DBPath)
	assert.Equal(t, []string{"*"}, s.AcceptedOrigins)
	assert.False(t, s.IsProduction())
	assert.Equal(t, 30*time.Second, s.ShutdownTimeout)
	assert.False(t, s.Email.Enabled())
	assert.False(t, s.SMS.Enabled())
}

func TestFromMap_Overrides(t *testing.T) {
	s := FromMap(map[string]string{
		"PORT":                  "8080",
		"APP_ENV":               "Production",
		"ACCEPTED_ORIGINS":      "https://a.dev,https://b.dev",
		"RESEND_API_KEY":        "key",
		"RESEND_FROM_EMAIL":     "site@a.dev",
		"CONTACT_NOTIFY_EMAILS": "me@a.dev",
		"TWILIO_ACCOUNT_SID":    "AC1",
		"TWILIO_AUTH_TOKEN":     "tok",
		"TWILIO_FROM_NUMBER":    "+15550001",
	})

	assert.Equal(t, "0.0.0.0:8080", s.Address())
	assert.True(t, s.IsProduction())
	assert.Equal(t, []string{"https://a.dev", "https://b.dev"}, s.AcceptedOrigins)
	assert.True(t, s.Email.Enabled())
	assert.False(t, s.SMS.Enabled(), "missing destination number")
}
