package emit

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestQuoteIdent(t *testing.T) {
	c := qt.New(t)

	q, err := quoteIdent("users")
	c.Assert(err, qt.IsNil)
	c.Assert(q, qt.Equals, `"users"`)
}

func TestQuoteIdent_RejectsEmbeddedQuote(t *testing.T) {
	c := qt.New(t)

	_, err := quoteIdent(`weird"name`)
	c.Assert(err, qt.IsNotNil)
}

func TestQuoteIdent_RejectsFullwidthRune(t *testing.T) {
	c := qt.New(t)

	_, err := quoteIdent("ｕｓｅｒｓ")
	c.Assert(err, qt.IsNotNil)
}

func TestQuoteQualified(t *testing.T) {
	c := qt.New(t)

	q, err := quoteQualified("public", "users")
	c.Assert(err, qt.IsNil)
	c.Assert(q, qt.Equals, `"public"."users"`)
}
