package database

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/infra/tabular"
)

func TestIdentifierPattern(t *testing.T) {
	valid := []string{"keywords", "keyword_severity", "public.keywords", "_t1"}
	invalid := []string{"", "1keywords", "keywords; DROP TABLE x", "a.b.c", "key words", `"keywords"`}

	for _, name := range valid {
		assert.True(t, identifierPattern.MatchString(name), name)
	}
	for _, name := range invalid {
		assert.False(t, identifierPattern.MatchString(name), name)
	}
}

func TestQuoteTable(t *testing.T) {
	assert.Equal(t, `"keywords"`, quoteTable("keywords"))
	assert.Equal(t, `"public"."keyword_severity"`, quoteTable("public.keyword_severity"))
}

func TestToRow(t *testing.T) {
	row := toRow(
		[]string{"keyword", "severity", "context"},
		[]interface{}{[]byte("scam"), int64(18), nil},
	)

	assert.Equal(t, tabular.Row{"keyword": "scam", "severity": int64(18), "context": nil}, row)
}

func TestConfigDSN(t *testing.T) {
	cfg := &Config{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "scanner", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=scanner sslmode=disable", cfg.DSN())
}
