package funcs_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-funcs/pkg/funcs"
)

func TestIdentityAndConstant(t *testing.T) {
	assert.Equal(t, "v", funcs.Identity[string]()("v"))
	assert.Equal(t, 5, funcs.Constant[string](5)("ignored"))
}

func TestCompose(t *testing.T) {
	itoa := funcs.Mapper[int, string](strconv.Itoa)
	upper := funcs.Mapper[string, string](strings.ToUpper)

	// Left-to-right: itoa first, then upper.
	hex := funcs.Compose(itoa, upper)
	assert.Equal(t, "42", hex(42))

	length := funcs.Compose(itoa, func(s string) int { return len(s) })
	assert.Equal(t, 3, length(100))
}

func TestMapperAndThen(t *testing.T) {
	trim := funcs.Mapper[string, string](strings.TrimSpace)
	got := trim.AndThen(strings.ToUpper)("  go  ")
	assert.Equal(t, "GO", got)
}

func TestMapperBind(t *testing.T) {
	itoa := funcs.Mapper[int, string](strconv.Itoa)
	sup := itoa.Bind(7)
	assert.Equal(t, "7", sup())
}

func TestBiMapperBinding(t *testing.T) {
	join := funcs.BiMapper[string, string, string](func(a, b string) string {
		return a + ":" + b
	})

	assert.Equal(t, "k:v", join.BindFirst("k")("v"))
	assert.Equal(t, "k:v", join.BindSecond("v")("k"))
}

func TestPair(t *testing.T) {
	p := funcs.PairOf("count", 3)
	k, v := p.Unpack()
	assert.Equal(t, "count", k)
	assert.Equal(t, 3, v)

	s := p.Swap()
	assert.Equal(t, 3, s.First)
	assert.Equal(t, "count", s.Second)
}
