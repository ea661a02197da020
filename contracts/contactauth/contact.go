package contactauth

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/crypto"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neofs-contactauth/contracts/contactauth/contactconst"
)

// Contact is an external identity (e-mail, messenger or social handle) bound
// to an account.
type Contact struct {
	// Category is one of contactconst categories.
	Category int
	// Value is a normalized e-mail address or handle.
	Value string
	// SecondaryKey is a stable numeric identifier of the handle owner for
	// categories where the handle can be renamed, 0 otherwise.
	SecondaryKey int
}

// usesSecondaryKey returns true if contact identity of the category is
// anchored to the secondary key instead of the value.
func usesSecondaryKey(category int) bool {
	return category == contactconst.Telegram || category == contactconst.Github
}

func isHandle(category int) bool {
	return category != contactconst.Email
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\v' || c == '\f' || c == '\r'
}

// isNBSP checks whether s has UTF-8 encoded U+00A0 at i.
func isNBSP(s string, i int) bool {
	return i+1 < len(s) && s[i] == 0xc2 && s[i+1] == 0xa0
}

// blankLen returns the length of the blank character at i, 0 if there is
// none.
func blankLen(s string, i int) int {
	if isSpace(s[i]) {
		return 1
	}

	if isNBSP(s, i) {
		return 2
	}

	return 0
}

// normalize returns canonical form of the contact. It panics if the contact
// is invalid.
func normalize(c Contact) Contact {
	if c.Category < 0 || c.Category >= contactconst.CategoryCount {
		panic(contactconst.ErrInvalidContact + ": unknown category")
	}

	value := normalizeValue(c.Value, isHandle(c.Category))
	if len(value) == 0 {
		panic(contactconst.ErrInvalidContact + ": empty value")
	}

	secondary := 0
	if usesSecondaryKey(c.Category) {
		if c.SecondaryKey <= 0 {
			panic(contactconst.ErrInvalidContact + ": missing secondary key")
		}
		secondary = c.SecondaryKey
	}

	return Contact{
		Category:     c.Category,
		Value:        value,
		SecondaryKey: secondary,
	}
}

// normalizeValue trims ASCII white space and no-break spaces (and leading
// '@' of handles) and lower-cases ASCII letters.
func normalizeValue(s string, handle bool) string {
	start := 0
	for start < len(s) {
		n := blankLen(s, start)
		if n == 0 && handle && s[start] == '@' {
			n = 1
		}

		if n == 0 {
			break
		}

		start += n
	}

	end := len(s)
	for end > start {
		if isSpace(s[end-1]) {
			end--
			continue
		}

		if end-start >= 2 && isNBSP(s, end-2) {
			end -= 2
			continue
		}

		break
	}

	res := make([]byte, end-start)
	for i := start; i < end; i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		res[i-start] = c
	}

	return string(res)
}

// contactKey returns the digest of the canonical contact identity. Contacts
// with equal keys belong to the same real-world identity.
func contactKey(c Contact) interop.Hash256 {
	var id string
	if usesSecondaryKey(c.Category) {
		id = std.Itoa10(c.Category) + "#" + std.Itoa10(c.SecondaryKey)
	} else {
		id = std.Itoa10(c.Category) + ":" + c.Value
	}

	return crypto.Sha256([]byte(id))
}

func newContact(category int, value string, secondaryKey int) Contact {
	return normalize(Contact{
		Category:     category,
		Value:        value,
		SecondaryKey: secondaryKey,
	})
}
