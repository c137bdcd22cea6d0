package query

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Names of the pagination signals read from a request, case-sensitive.
const (
	limitName  = "limit"
	offsetName = "offset"
	rangeName  = "Range"
)

// Only the items unit and a single start-end pair are supported; the match
// must cover the whole header, so trailing garbage invalidates it.
var itemsRangePattern = regexp.MustCompile(`^items=(\d+)-(\d+)$`)

// ErrBadRequest marks client-caused parse and validation failures.
// The boundary maps it to HTTP 400; messages carry the offending raw input.
var ErrBadRequest = errors.New("bad request")

// Lookup resolves a named pagination signal from the current request and
// returns its URL-decoded value, or "" when the request does not carry it.
// Blank values are treated the same as absent ones.
type Lookup func(name string) string

// ParseWithDefault builds a Range from the request's pagination signals,
// starting from offset 0 and the given default limit so a request without
// any pagination info still yields a usable window.
func ParseWithDefault(get Lookup, defaultLimit int) (*Range, error) {
	r := New()
	if err := r.SetOffset(0); err != nil {
		return nil, err
	}
	if err := r.SetLimit(defaultLimit); err != nil {
		return nil, err
	}
	if err := parseInto(get, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Parse builds a Range from the request's pagination signals starting from
// an empty Range. When the request carries no signals at all the result is
// uninitialized, and a lone 'offset' parameter fails validation: the limit
// is never defaulted on this path, since the caller must know how many
// items to fetch.
func Parse(get Lookup) (*Range, error) {
	r := New()
	if err := parseInto(get, r); err != nil {
		return nil, err
	}
	return r, nil
}

func parseInto(get Lookup, r *Range) error {
	done, err := parseLimitAndOffset(get(limitName), get(offsetName), r)
	if err != nil || done {
		return err
	}
	return parseRangeHeader(get(rangeName), r)
}

// parseLimitAndOffset applies the parameter tier of the precedence
// protocol. It reports true when either parameter was present, in which
// case the Range header must not be consulted at all.
func parseLimitAndOffset(limitStr, offsetStr string, r *Range) (bool, error) {
	hasLimit := strings.TrimSpace(limitStr) != ""
	hasOffset := strings.TrimSpace(offsetStr) != ""
	if !hasLimit && !hasOffset {
		return false, nil
	}

	if hasLimit {
		v, err := strconv.Atoi(limitStr)
		if err != nil {
			return false, fmt.Errorf("%w: 'limit' parameter is not an integer, was: %s", ErrBadRequest, limitStr)
		}
		if err := r.SetLimit(v); err != nil {
			return false, err
		}
	}
	if hasOffset {
		v, err := strconv.ParseInt(offsetStr, 10, 64)
		if err != nil {
			return false, fmt.Errorf("%w: 'offset' parameter is not an integer, was: %s", ErrBadRequest, offsetStr)
		}
		if err := r.SetOffset(v); err != nil {
			return false, err
		}
	} else if err := r.SetOffset(0); err != nil {
		return false, err
	}

	if !r.Valid() {
		return false, fmt.Errorf("%w: invalid 'limit' and 'offset' parameters: limit=%s offset=%s",
			ErrBadRequest, limitStr, offsetStr)
	}
	return true, nil
}

func parseRangeHeader(header string, r *Range) error {
	if strings.TrimSpace(header) == "" {
		return nil
	}

	m := itemsRangePattern.FindStringSubmatch(header)
	if m == nil {
		return fmt.Errorf("%w: unparseable 'Range' header, expecting items=[start]-[end], was: %s",
			ErrBadRequest, header)
	}

	// Mutator failures are deliberately not propagated here; validity is
	// re-checked below either way, so a pre-seeded Range may fall back to
	// its defaults when the header describes an inverted span.
	if start, err := strconv.ParseInt(m[1], 10, 64); err == nil {
		if err := r.SetOffset(start); err == nil {
			if end, err := strconv.ParseInt(m[2], 10, 64); err == nil {
				_ = r.SetLimitViaEnd(end)
			}
		}
	}

	if !r.Valid() {
		return fmt.Errorf("%w: invalid 'Range' header, expecting 'items=[start]-[end]', was: %s",
			ErrBadRequest, header)
	}
	return nil
}
