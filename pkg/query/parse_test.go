package query_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/maxviazov/article-catalog-service/pkg/query"
)

// mapLookup builds a Lookup over a fixed set of signals, mirroring the
// URL-decoded parameter/header view a request adapter would provide.
func mapLookup(values map[string]string) query.Lookup {
	return func(name string) string { return values[name] }
}

func TestParse_LimitOnlyDefaultsOffset(t *testing.T) {
	r, err := query.Parse(mapLookup(map[string]string{"limit": "25"}))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if r.Offset() != 0 || r.Limit() != 25 || !r.Valid() {
		t.Fatalf("want offset=0 limit=25 valid, got offset=%d limit=%d valid=%v", r.Offset(), r.Limit(), r.Valid())
	}
}

func TestParse_OffsetAloneIsRejected(t *testing.T) {
	// The asymmetry is intentional: a lone limit defaults the offset to 0,
	// but a lone offset never defaults the limit.
	_, err := query.Parse(mapLookup(map[string]string{"offset": "10"}))
	if !errors.Is(err, query.ErrBadRequest) {
		t.Fatalf("Parse with offset alone = %v; want ErrBadRequest", err)
	}
}

func TestParse_ParamsOverrideRangeHeader(t *testing.T) {
	r, err := query.Parse(mapLookup(map[string]string{
		"limit":  "10",
		"offset": "5",
		"Range":  "items=0-99",
	}))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if r.Offset() != 5 || r.Limit() != 10 {
		t.Fatalf("params must win over Range header, got offset=%d limit=%d", r.Offset(), r.Limit())
	}
}

func TestParse_SingleParamStillSuppressesRangeHeader(t *testing.T) {
	r, err := query.Parse(mapLookup(map[string]string{
		"limit": "3",
		"Range": "items=0-99",
	}))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if r.Offset() != 0 || r.Limit() != 3 {
		t.Fatalf("want offset=0 limit=3, got offset=%d limit=%d", r.Offset(), r.Limit())
	}
}

func TestParse_RangeHeader(t *testing.T) {
	cases := []struct {
		name       string
		header     string
		wantOffset int64
		wantLimit  int
	}{
		{"first page", "items=0-24", 0, 25},
		{"interior window", "items=10-19", 10, 10},
		{"single item", "items=5-5", 5, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := query.Parse(mapLookup(map[string]string{"Range": tc.header}))
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tc.header, err)
			}
			if r.Offset() != tc.wantOffset || r.Limit() != tc.wantLimit {
				t.Errorf("got offset=%d limit=%d; want offset=%d limit=%d",
					r.Offset(), r.Limit(), tc.wantOffset, tc.wantLimit)
			}
		})
	}
}

func TestParse_RangeHeaderRejections(t *testing.T) {
	cases := []struct {
		name   string
		header string
	}{
		{"wrong unit", "bytes=0-24"},
		{"trailing text", "items=0-24 please"},
		{"leading text", "see items=0-24"},
		{"multi range", "items=0-24,30-40"},
		{"open ended", "items=5-"},
		{"negative start", "items=-1-10"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := query.Parse(mapLookup(map[string]string{"Range": tc.header}))
			if !errors.Is(err, query.ErrBadRequest) {
				t.Fatalf("Parse(%q) = %v; want ErrBadRequest", tc.header, err)
			}
			if !strings.Contains(err.Error(), tc.header) {
				t.Errorf("error must cite the literal header text, got: %v", err)
			}
		})
	}
}

func TestParse_RangeHeaderInvertedSpan(t *testing.T) {
	// items=50-10 matches the pattern but computes a negative limit; the
	// mutator failure is swallowed and the final validity check rejects it.
	_, err := query.Parse(mapLookup(map[string]string{"Range": "items=50-10"}))
	if !errors.Is(err, query.ErrBadRequest) {
		t.Fatalf("Parse(items=50-10) = %v; want ErrBadRequest", err)
	}
}

func TestParse_NonIntegerParams(t *testing.T) {
	for _, values := range []map[string]string{
		{"limit": "abc"},
		{"offset": "1.5", "limit": "10"},
		{"limit": " 25"},
	} {
		if _, err := query.Parse(mapLookup(values)); !errors.Is(err, query.ErrBadRequest) {
			t.Errorf("Parse(%v) = %v; want ErrBadRequest", values, err)
		}
	}
}

func TestParse_NoSignalsLeavesRangeEmpty(t *testing.T) {
	r, err := query.Parse(mapLookup(nil))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if r.Initialized() {
		t.Fatalf("no signals must leave the empty seed untouched, got offset=%d limit=%d", r.Offset(), r.Limit())
	}
}

func TestParse_BlankSignalsAreAbsent(t *testing.T) {
	r, err := query.Parse(mapLookup(map[string]string{"limit": "  ", "offset": "", "Range": " "}))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if r.Initialized() {
		t.Fatalf("blank signals must count as absent")
	}
}

func TestParseWithDefault_NoSignals(t *testing.T) {
	r, err := query.ParseWithDefault(mapLookup(nil), 25)
	if err != nil {
		t.Fatalf("ParseWithDefault failed: %v", err)
	}
	if r.Offset() != 0 || r.Limit() != 25 || !r.Valid() {
		t.Fatalf("want seeded 0..24, got offset=%d limit=%d", r.Offset(), r.Limit())
	}
}

func TestParseWithDefault_OffsetAloneUsesSeededLimit(t *testing.T) {
	r, err := query.ParseWithDefault(mapLookup(map[string]string{"offset": "10"}), 25)
	if err != nil {
		t.Fatalf("ParseWithDefault failed: %v", err)
	}
	if r.Offset() != 10 || r.Limit() != 25 {
		t.Fatalf("seeded default limit must survive, got offset=%d limit=%d", r.Offset(), r.Limit())
	}
}

func TestParseWithDefault_InvertedSpanFallsBackToSeed(t *testing.T) {
	// With a pre-seeded limit the swallowed mutator failure leaves the seed
	// in place and the range stays valid, so the header is silently ignored
	// except for its start index.
	r, err := query.ParseWithDefault(mapLookup(map[string]string{"Range": "items=50-10"}), 25)
	if err != nil {
		t.Fatalf("ParseWithDefault failed: %v", err)
	}
	if r.Offset() != 50 || r.Limit() != 25 {
		t.Fatalf("want offset=50 with seeded limit 25, got offset=%d limit=%d", r.Offset(), r.Limit())
	}
}
