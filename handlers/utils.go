package handlers

import (
	"math"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// queryAny returns the first non-empty query parameter among keys.
func queryAny(c *fiber.Ctx, keys ...string) string {
	for _, key := range keys {
		if value := c.Query(key); value != "" {
			return value
		}
	}
	return ""
}

// queryLimit parses ?limit=. Zero means no limit.
func queryLimit(c *fiber.Ctx) int {
	return parseLimit(c.Query("limit"))
}

// parseLimit reads the leading integer of s after optional whitespace and
// sign, so "3abc" and "1.5" are 3 and 1. No digits, non-positive values and
// overflow all yield 0.
func parseLimit(s string) int {
	s = strings.TrimLeft(s, " \t\n\r\f\v")
	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}

	n := 0
	for i := 0; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		d := int(s[i] - '0')
		if n > (math.MaxInt-d)/10 {
			return 0
		}
		n = n*10 + d
	}
	if negative {
		return 0
	}
	return n
}
