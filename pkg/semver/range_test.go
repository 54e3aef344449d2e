package semver

import (
	"errors"
	"fmt"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		name      string
		version   string
		specifier string
		want      bool
	}{
		{name: "wildcard", version: "1.0.0", specifier: "*", want: true},
		{name: "wildcardUnparsableVersion", version: "nightly", specifier: "*", want: true},
		{name: "empty", version: "1.0.0", specifier: "  ", want: true},
		{name: "gteEqual", version: "1.2.0", specifier: ">=1.2.0", want: true},
		{name: "gteAbove", version: "1.3.0", specifier: ">=1.2.0", want: true},
		{name: "gteBelow", version: "1.1.9", specifier: ">=1.2.0", want: false},
		{name: "lteEqual", version: "1.2.0", specifier: "<=1.2.0", want: true},
		{name: "lteAbove", version: "1.2.1", specifier: "<=1.2.0", want: false},
		{name: "gtEqual", version: "1.2.0", specifier: ">1.2.0", want: false},
		{name: "ltBelow", version: "0.9.0", specifier: "<1.0.0", want: true},
		{name: "eq", version: "v2.0.0", specifier: "=2.0.0", want: true},
		{name: "eqDifferent", version: "2.0.1", specifier: "=2.0.0", want: false},
		{name: "bareVersionIsExact", version: "2.0.0", specifier: "2.0.0", want: true},
		{name: "bareVersionIsExactMiss", version: "2.0.1", specifier: "v2.0.0", want: false},
		{name: "spaceAfterOperator", version: "3.0.0", specifier: ">= 2.0.0", want: true},
		{name: "conjunction", version: "1.5.0", specifier: ">=1.0.0 <2.0.0", want: true},
		{name: "conjunctionComma", version: "2.0.0", specifier: ">=1.0.0, <2.0.0", want: false},
		{name: "alternative", version: "3.0.0", specifier: "<1.0.0 || =3.0.0", want: true},
		{name: "alternativeMiss", version: "2.0.0", specifier: "<1.0.0 || =3.0.0", want: false},
		{name: "unparsableVersion", version: "1.2", specifier: ">=1.0.0", want: false},
		{name: "unparsableBound", version: "1.2.0", specifier: ">=latest", want: false},
		{name: "unknownOperator", version: "1.2.0", specifier: "=>1.0.0", want: false},
		{name: "operatorOnly", version: "1.2.0", specifier: ">=", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(tt.version, tt.specifier))
		})
	}
}

func TestSatisfiedErrors(t *testing.T) {
	_, err := Satisfied("1.0", ">=1.0.0")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidVersion))

	_, err = Satisfied("1.0.0", "=>1.0.0")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownOperator))

	ok, err := Satisfied("1.0.0", "*")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSatisfiedWildcardWithOperator(t *testing.T) {
	for _, specifier := range []string{"<*", ">=*", "=*", "> *", ">=1.0.0 <*", "<0.1.0 || >*"} {
		ok, err := Satisfied("1.0.0", specifier)
		assert.ErrorIs(t, err, ErrInvalidVersion, specifier)
		assert.False(t, ok, specifier)
		assert.False(t, Matches("1.0.0", specifier), specifier)
	}

	// a bare wildcard comparator still holds inside a group
	ok, err := Satisfied("1.0.0", ">=1.0.0 *")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMatchesAgreesWithCompare(t *testing.T) {
	f := func(a, b [3]uint16) bool {
		left := fmt.Sprintf("%d.%d.%d", a[0]%1000, a[1]%1000, a[2]%1000)
		right := fmt.Sprintf("%d.%d.%d", b[0]%1000, b[1]%1000, b[2]%1000)

		c, err := Compare(left, right)
		if err != nil {
			return false
		}

		return Matches(left, ">="+right) == (c >= 0) &&
			Matches(left, "<="+right) == (c <= 0) &&
			Matches(left, ">"+right) == (c > 0) &&
			Matches(left, "<"+right) == (c < 0) &&
			Matches(left, "="+right) == (c == 0)
	}

	if err := quick.Check(f, &quick.Config{MaxCount: 250}); err != nil {
		t.Error(err)
	}
}

func TestParseOperator(t *testing.T) {
	for _, op := range []string{"=", ">", "<", ">=", "<="} {
		got, err := ParseOperator(op)
		require.NoError(t, err)
		assert.Equal(t, Operator(op), got)
	}

	got, err := ParseOperator("")
	require.NoError(t, err)
	assert.Equal(t, EQ, got)

	_, err = ParseOperator("==")
	assert.ErrorIs(t, err, ErrUnknownOperator)
}
