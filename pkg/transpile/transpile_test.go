package transpile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranspile_HelloWorld(t *testing.T) {
	src := `main = () {
    greeting := "hello"
    io.println(greeting)
}`

	want := `function main() {
  const greeting = "hello";
  return console.log(greeting);
}

// Entry point
main();
`

	got, err := Transpile(src)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestTranspile_StructLiteralUsesDeclarationOrder(t *testing.T) {
	src := `Point = struct {
    x: i32,
    y: i32,
}

p := Point{ y: 2, x: 1 }`

	want := `class Point {
  constructor(x, y) {
    this.x = x;
    this.y = y;
  }
}

const p = new Point(1, 2);
`

	got, err := Transpile(src)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestTranspile_MatchInFunction(t *testing.T) {
	src := `describe = (n: i32) string {
    n ? {
        0 => "zero",
        1 | 2 => "small",
        _ => "many",
    }
}`

	want := `/**
 * @param {number} n
 * @returns {string}
 */
function describe(n) {
  return ((__match) => {
    if (__match === 0) {
      return "zero";
    } else if ((__match === 1 || __match === 2)) {
      return "small";
    } else if (true) {
      return "many";
    }
  })(n);
}
`

	got, err := Transpile(src)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestTranspile_WideIntegersBecomeBigInt(t *testing.T) {
	got, err := Transpile("n := 42i64")
	require.NoError(t, err)
	assert.Equal(t, "const n = 42n;\n", got)
}

func TestTranspile_EnumRoundTrip(t *testing.T) {
	src := `Color = enum {
    Red,
    Custom(i32),
}

c := Color.Custom(7)`

	got, err := Transpile(src)
	require.NoError(t, err)
	assert.Contains(t, got, "// enum Color")
	assert.Contains(t, got, `Red: Object.freeze({ tag: "Red" }),`)
	assert.Contains(t, got, `Custom: (value) => Object.freeze({ tag: "Custom", value }),`)
	assert.Contains(t, got, "const c = Color.Custom(7);")
}

func TestTranspile_SyntaxErrorIsHard(t *testing.T) {
	got, err := Transpile("x := ")
	require.Error(t, err)
	assert.Empty(t, got)
}
