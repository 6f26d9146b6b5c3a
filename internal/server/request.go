package server

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/gorilla/schema"
)

// queryDecoder is shared because schema.Decoder caches struct metadata.
var queryDecoder = newQueryDecoder()

func newQueryDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

// DecodeQuery decodes the request's query string into dst using the
// `schema` struct tags. Unknown keys are ignored; malformed values (e.g. a
// non-numeric minEmployees) are a caller error.
func DecodeQuery(c *fiber.Ctx, dst interface{}) error {
	values := url.Values{}
	c.Context().QueryArgs().VisitAll(func(key, value []byte) {
		values.Add(string(key), string(value))
	})
	return queryDecoder.Decode(dst, values)
}
